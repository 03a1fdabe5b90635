package upstream

import (
	"github.com/shopspring/decimal"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type UserDetails struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type RoomStandard struct {
	ID            int64           `json:"id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
}

type Room struct {
	Number        string          `json:"number"`
	StandardID    int64           `json:"standardId"`
	Standard      string          `json:"standard,omitempty"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Description   string          `json:"description,omitempty"`
}

type Service struct {
	ID          int64           `json:"id,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

type Guest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	BillID    *int64 `json:"billId,omitempty"`
}

type ReservationRequest struct {
	Room       string `json:"room"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	GuestCount int    `json:"guestCount"`
}

type Reservation struct {
	ID       int64           `json:"id"`
	Room     string          `json:"room"`
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
	Price    decimal.Decimal `json:"price"`
}

type ServiceOrderRequest struct {
	ServiceID int64 `json:"serviceId"`
	SlotID    int64 `json:"slotId"`
}

type ServiceOrder struct {
	ID        int64  `json:"id"`
	ServiceID int64  `json:"serviceId"`
	SlotID    int64  `json:"slotId"`
	Status    string `json:"status"`
}
