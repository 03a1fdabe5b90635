package request

import (
	"hotel-front/internal/domain/cart"

	"github.com/shopspring/decimal"
)

type ReservationItemRequest struct {
	RoomNumber string `json:"id" binding:"required,notblank"`
	CheckIn    string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" binding:"required,datetime=2006-01-02"`
	GuestCount int    `json:"guestCount" binding:"required,min=1"`
}

func (r ReservationItemRequest) ToDomain() (cart.ReservationItem, error) {
	checkIn, err := cart.ParseDate(r.CheckIn)
	if err != nil {
		return cart.ReservationItem{}, err
	}
	checkOut, err := cart.ParseDate(r.CheckOut)
	if err != nil {
		return cart.ReservationItem{}, err
	}
	return cart.ReservationItem{
		RoomNumber: r.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}

type ReservationCartRequest struct {
	Items []ReservationItemRequest `json:"items" binding:"dive"`
}

func (r ReservationCartRequest) ToDomain() ([]cart.ReservationItem, error) {
	items := make([]cart.ReservationItem, 0, len(r.Items))
	for _, it := range r.Items {
		item, err := it.ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type ServiceItemRequest struct {
	ServiceID int64           `json:"id" binding:"required,gt=0"`
	SlotID    int64           `json:"slotId" binding:"required,gt=0"`
	Title     string          `json:"title"`
	Date      string          `json:"date"`
	Duration  int             `json:"duration" binding:"min=0"`
	Price     decimal.Decimal `json:"price"`
}

func (r ServiceItemRequest) ToDomain() cart.ServiceItem {
	return cart.ServiceItem{
		ServiceID: r.ServiceID,
		SlotID:    r.SlotID,
		Title:     r.Title,
		Date:      r.Date,
		Duration:  r.Duration,
		Price:     r.Price,
	}
}

type ServiceCartRequest struct {
	Items []ServiceItemRequest `json:"items" binding:"dive"`
}

func (r ServiceCartRequest) ToDomain() []cart.ServiceItem {
	items := make([]cart.ServiceItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToDomain())
	}
	return items
}
