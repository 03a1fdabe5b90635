package response

import (
	"hotel-front/internal/domain/cart"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ReservationCartResponse struct {
	Items []cart.ReservationItem `json:"items"`
	Count int                    `json:"count"`
	Added *bool                  `json:"added,omitempty"`
}

type ServiceCartResponse struct {
	Items []cart.ServiceItem `json:"items"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
	Added *bool              `json:"added,omitempty"`
}

func FromReservationCartView(v *queries.ReservationCartView) *ReservationCartResponse {
	return &ReservationCartResponse{
		Items: nonNil(v.Items),
		Count: v.Count,
	}
}

func FromServiceCartView(v *queries.ServiceCartView) *ServiceCartResponse {
	return &ServiceCartResponse{
		Items: nonNil(v.Items),
		Count: v.Count,
		Total: v.Total,
	}
}

func FromReservationCartResult(r *commands.CartResult[cart.ReservationItem], reportAdded bool) *ReservationCartResponse {
	res := &ReservationCartResponse{
		Items: nonNil(r.Items),
		Count: len(r.Items),
	}
	if reportAdded {
		res.Added = &r.Added
	}
	return res
}

func FromServiceCartResult(r *commands.CartResult[cart.ServiceItem], reportAdded bool) *ServiceCartResponse {
	res := &ServiceCartResponse{
		Items: nonNil(r.Items),
		Count: len(r.Items),
		Total: cart.TotalPrice(r.Items),
	}
	if reportAdded {
		res.Added = &r.Added
	}
	return res
}

// nonNil keeps empty carts rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
