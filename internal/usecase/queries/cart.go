package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/usecase/shared"
)

type ReservationCartView struct {
	Items []cart.ReservationItem
	Count int
}

type ServiceCartView struct {
	Items []cart.ServiceItem
	Count int
	Total decimal.Decimal
}

type CartQueries interface {
	Reservations(ctx context.Context, sess shared.Session) (*ReservationCartView, error)
	Services(ctx context.Context, sess shared.Session) (*ServiceCartView, error)
}

type cartQueriesImpl struct {
	carts shared.CartRepository
}

func NewCartQueries(carts shared.CartRepository) CartQueries {
	return &cartQueriesImpl{carts: carts}
}

func (q *cartQueriesImpl) Reservations(ctx context.Context, sess shared.Session) (*ReservationCartView, error) {
	store, err := q.carts.Reservations(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &ReservationCartView{Items: store.Items(), Count: store.Count()}, nil
}

func (q *cartQueriesImpl) Services(ctx context.Context, sess shared.Session) (*ServiceCartView, error) {
	store, err := q.carts.Services(ctx, sess)
	if err != nil {
		return nil, err
	}
	items := store.Items()
	return &ServiceCartView{Items: items, Count: len(items), Total: cart.TotalPrice(items)}, nil
}
