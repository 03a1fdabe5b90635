package commands

import (
	"context"

	"hotel-front/internal/infra/upstream"
)

// AuthGateway is the part of the hotel API that issues and describes tokens.
type AuthGateway interface {
	ObtainToken(ctx context.Context, username, password string) (*upstream.TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (*upstream.TokenPair, error)
	UserDetails(ctx context.Context, token string) (*upstream.UserDetails, error)
}

type CheckoutGateway interface {
	CreateReservations(ctx context.Context, token string, reqs []upstream.ReservationRequest) ([]upstream.Reservation, error)
	OrderServices(ctx context.Context, token string, reqs []upstream.ServiceOrderRequest) ([]upstream.ServiceOrder, error)
}

type CatalogGateway interface {
	CreateRoom(ctx context.Context, token string, room upstream.Room) (*upstream.Room, error)
	UpdateRoom(ctx context.Context, token, number string, room upstream.Room) (*upstream.Room, error)
	DeleteRoom(ctx context.Context, token, number string) error
	CreateRoomStandard(ctx context.Context, token string, standard upstream.RoomStandard) (*upstream.RoomStandard, error)
	UpdateRoomStandard(ctx context.Context, token string, id int64, standard upstream.RoomStandard) (*upstream.RoomStandard, error)
	DeleteRoomStandard(ctx context.Context, token string, id int64) error
	CreateService(ctx context.Context, token string, service upstream.Service) (*upstream.Service, error)
	UpdateService(ctx context.Context, token string, id int64, service upstream.Service) (*upstream.Service, error)
	DeleteService(ctx context.Context, token string, id int64) error
}
