package response

import (
	"hotel-front/internal/infra/upstream"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID       int64           `json:"id"`
	Room     string          `json:"room"`
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
	Price    decimal.Decimal `json:"price"`
}

type ServiceOrderResponse struct {
	ID        int64  `json:"id"`
	ServiceID int64  `json:"serviceId"`
	SlotID    int64  `json:"slotId"`
	Status    string `json:"status"`
}

func FromReservations(rs []upstream.Reservation) ([]ReservationResponse, error) {
	return copyList[upstream.Reservation, ReservationResponse](rs)
}

func FromServiceOrders(orders []upstream.ServiceOrder) ([]ServiceOrderResponse, error) {
	return copyList[upstream.ServiceOrder, ServiceOrderResponse](orders)
}
