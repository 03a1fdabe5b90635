package queries

import (
	"context"

	"hotel-front/internal/domain/bill"
	"hotel-front/internal/domain/schedule"
	"hotel-front/internal/infra/upstream"
)

type UserGateway interface {
	UserDetails(ctx context.Context, token string) (*upstream.UserDetails, error)
}

type SlotGateway interface {
	ServiceSlots(ctx context.Context, token string, serviceID int64, from, to string) ([]schedule.Slot, error)
}

type CatalogGateway interface {
	AvailableRooms(ctx context.Context, token, checkIn, checkOut string, guests int) ([]upstream.Room, error)
	ListRooms(ctx context.Context, token string) ([]upstream.Room, error)
	ListRoomStandards(ctx context.Context, token string) ([]upstream.RoomStandard, error)
	ListServices(ctx context.Context, token string) ([]upstream.Service, error)
	ListGuests(ctx context.Context, token string) ([]upstream.Guest, error)
	BillElements(ctx context.Context, token string, billID int64) (*bill.Bill, error)
}
