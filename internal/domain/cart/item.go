package cart

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Storage keys, shared with the browser client's local storage names.
const (
	ReservationsKey = "reservationsCart"
	ServicesKey     = "servicesCart"
)

var (
	ErrRoomRequired      = errors.New("room number is required")
	ErrInvalidStay       = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrInvalidService    = errors.New("service and slot identifiers are required")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

// Item is anything a Store can hold. Two items with the same DedupKey are the
// same selection.
type Item interface {
	DedupKey() string
}

// ReservationItem is a room selected for a stay. GuestCount is not part of its
// identity: the same room and dates with a different head count is a duplicate.
type ReservationItem struct {
	RoomNumber string `json:"id"`
	CheckIn    Date   `json:"checkIn"`
	CheckOut   Date   `json:"checkOut"`
	GuestCount int    `json:"guestCount"`
}

func (r ReservationItem) DedupKey() string {
	return r.RoomNumber + "|" + r.CheckIn.String() + "|" + r.CheckOut.String()
}

func (r ReservationItem) Nights() int {
	return r.CheckIn.NightsUntil(r.CheckOut)
}

func (r ReservationItem) Validate() error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return ErrRoomRequired
	}
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() || !r.CheckIn.Before(r.CheckOut) {
		return ErrInvalidStay
	}
	if r.GuestCount < 1 {
		return ErrInvalidGuestCount
	}
	return nil
}

// ServiceItem is a hotel service booked into one of its time slots.
type ServiceItem struct {
	ServiceID int64           `json:"id"`
	SlotID    int64           `json:"slotId"`
	Title     string          `json:"title"`
	Date      string          `json:"date"`
	Duration  int             `json:"duration"`
	Price     decimal.Decimal `json:"price"`
}

func (s ServiceItem) DedupKey() string {
	return strconv.FormatInt(s.ServiceID, 10) + "|" + strconv.FormatInt(s.SlotID, 10)
}

func (s ServiceItem) Validate() error {
	if s.ServiceID <= 0 || s.SlotID <= 0 {
		return ErrInvalidService
	}
	if s.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// TotalPrice sums service prices in cart order.
func TotalPrice(items []ServiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}
