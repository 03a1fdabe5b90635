//go:build unit || e2e

package builder

import (
	"hotel-front/internal/domain/cart"
	reqdto "hotel-front/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type ReservationItemBuilder struct {
	RoomNumber string
	CheckIn    string
	CheckOut   string
	GuestCount int
}

func NewReservationItemBuilder() *ReservationItemBuilder {
	return &ReservationItemBuilder{
		RoomNumber: "101",
		CheckIn:    "2026-10-20",
		CheckOut:   "2026-10-23",
		GuestCount: 2,
	}
}

func (b *ReservationItemBuilder) With(mutate func(*ReservationItemBuilder)) *ReservationItemBuilder {
	mutate(b)
	return b
}

func (b *ReservationItemBuilder) WithRoom(number string) *ReservationItemBuilder {
	b.RoomNumber = number
	return b
}

func (b *ReservationItemBuilder) BuildDTO() reqdto.ReservationItemRequest {
	return reqdto.ReservationItemRequest{
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestCount: b.GuestCount,
	}
}

// BuildDomain panics on malformed dates; builders are only fed test constants.
func (b *ReservationItemBuilder) BuildDomain() cart.ReservationItem {
	item, err := b.BuildDTO().ToDomain()
	if err != nil {
		panic(err)
	}
	return item
}

type ServiceItemBuilder struct {
	ServiceID int64
	SlotID    int64
	Title     string
	Date      string
	Duration  int
	Price     decimal.Decimal
}

func NewServiceItemBuilder() *ServiceItemBuilder {
	return &ServiceItemBuilder{
		ServiceID: 3,
		SlotID:    41,
		Title:     "Massage",
		Date:      "2026-10-21T10:00:00",
		Duration:  60,
		Price:     decimal.RequireFromString("150.00"),
	}
}

func (b *ServiceItemBuilder) With(mutate func(*ServiceItemBuilder)) *ServiceItemBuilder {
	mutate(b)
	return b
}

func (b *ServiceItemBuilder) WithSlot(slotID int64) *ServiceItemBuilder {
	b.SlotID = slotID
	return b
}

func (b *ServiceItemBuilder) BuildDTO() reqdto.ServiceItemRequest {
	return reqdto.ServiceItemRequest{
		ServiceID: b.ServiceID,
		SlotID:    b.SlotID,
		Title:     b.Title,
		Date:      b.Date,
		Duration:  b.Duration,
		Price:     b.Price,
	}
}

func (b *ServiceItemBuilder) BuildDomain() cart.ServiceItem {
	return b.BuildDTO().ToDomain()
}
