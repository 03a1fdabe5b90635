package upstream

import (
	"context"
	"net/http"
)

// CreateReservations books every requested stay in one request. The API
// accepts or rejects the batch as a whole.
func (c *Client) CreateReservations(ctx context.Context, token string, reqs []ReservationRequest) ([]Reservation, error) {
	var created []Reservation
	err := c.do(ctx, call{
		op:     "create_reservations",
		method: http.MethodPost,
		path:   "reservations/",
		token:  token,
		body:   reqs,
	}, &created)
	return created, err
}

func (c *Client) OrderServices(ctx context.Context, token string, reqs []ServiceOrderRequest) ([]ServiceOrder, error) {
	var orders []ServiceOrder
	err := c.do(ctx, call{
		op:     "order_services",
		method: http.MethodPost,
		path:   "services/orders/",
		token:  token,
		body:   reqs,
	}, &orders)
	return orders, err
}
