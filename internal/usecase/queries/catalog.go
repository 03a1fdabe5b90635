package queries

import (
	"context"

	"hotel-front/internal/domain/bill"
	"hotel-front/internal/domain/cart"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/shared"
)

var ErrInvalidStay = errs.New("invalid stay")

type CatalogQueries interface {
	AvailableRooms(ctx context.Context, sess shared.Session, checkIn, checkOut string, guests int) ([]upstream.Room, error)
	ListRooms(ctx context.Context, sess shared.Session) ([]upstream.Room, error)
	ListRoomStandards(ctx context.Context, sess shared.Session) ([]upstream.RoomStandard, error)
	ListServices(ctx context.Context, sess shared.Session) ([]upstream.Service, error)
	ListGuests(ctx context.Context, sess shared.Session) ([]upstream.Guest, error)
	Bill(ctx context.Context, sess shared.Session, billID int64) (*bill.Bill, error)
}

type catalogQueriesImpl struct {
	gateway CatalogGateway
}

func NewCatalogQueries(gateway CatalogGateway) CatalogQueries {
	return &catalogQueriesImpl{gateway: gateway}
}

// AvailableRooms checks the stay locally before asking the API, so a
// reversed range never leaves the process.
func (q *catalogQueriesImpl) AvailableRooms(ctx context.Context, sess shared.Session, checkIn, checkOut string, guests int) ([]upstream.Room, error) {
	in, err := cart.ParseDate(checkIn)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "check-in"), ErrInvalidStay)
	}
	out, err := cart.ParseDate(checkOut)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "check-out"), ErrInvalidStay)
	}
	if !in.Before(out) || guests < 0 {
		return nil, errs.Mark(cart.ErrInvalidStay, ErrInvalidStay)
	}

	rooms, err := q.gateway.AvailableRooms(ctx, sess.AccessToken, in.String(), out.String(), guests)
	return rooms, shared.MapUpstreamError(err)
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context, sess shared.Session) ([]upstream.Room, error) {
	rooms, err := q.gateway.ListRooms(ctx, sess.AccessToken)
	return rooms, shared.MapUpstreamError(err)
}

func (q *catalogQueriesImpl) ListRoomStandards(ctx context.Context, sess shared.Session) ([]upstream.RoomStandard, error) {
	standards, err := q.gateway.ListRoomStandards(ctx, sess.AccessToken)
	return standards, shared.MapUpstreamError(err)
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, sess shared.Session) ([]upstream.Service, error) {
	services, err := q.gateway.ListServices(ctx, sess.AccessToken)
	return services, shared.MapUpstreamError(err)
}

func (q *catalogQueriesImpl) ListGuests(ctx context.Context, sess shared.Session) ([]upstream.Guest, error) {
	guests, err := q.gateway.ListGuests(ctx, sess.AccessToken)
	return guests, shared.MapUpstreamError(err)
}

func (q *catalogQueriesImpl) Bill(ctx context.Context, sess shared.Session, billID int64) (*bill.Bill, error) {
	b, err := q.gateway.BillElements(ctx, sess.AccessToken, billID)
	return b, shared.MapUpstreamError(err)
}
