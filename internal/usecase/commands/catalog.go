package commands

import (
	"context"
	"strings"

	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/shared"
)

var ErrRoomNumberRequired = errs.New("room number is required")

// CatalogCommands manage rooms, room standards and services. Permission
// checks happen in the API as well; the router only filters by role.
type CatalogCommands interface {
	CreateRoom(ctx context.Context, sess shared.Session, room upstream.Room) (*upstream.Room, error)
	UpdateRoom(ctx context.Context, sess shared.Session, number string, room upstream.Room) (*upstream.Room, error)
	DeleteRoom(ctx context.Context, sess shared.Session, number string) error

	CreateRoomStandard(ctx context.Context, sess shared.Session, standard upstream.RoomStandard) (*upstream.RoomStandard, error)
	UpdateRoomStandard(ctx context.Context, sess shared.Session, id int64, standard upstream.RoomStandard) (*upstream.RoomStandard, error)
	DeleteRoomStandard(ctx context.Context, sess shared.Session, id int64) error

	CreateService(ctx context.Context, sess shared.Session, service upstream.Service) (*upstream.Service, error)
	UpdateService(ctx context.Context, sess shared.Session, id int64, service upstream.Service) (*upstream.Service, error)
	DeleteService(ctx context.Context, sess shared.Session, id int64) error
}

type catalogCommandsImpl struct {
	gateway CatalogGateway
}

func NewCatalogCommands(gateway CatalogGateway) CatalogCommands {
	return &catalogCommandsImpl{gateway: gateway}
}

func (c *catalogCommandsImpl) CreateRoom(ctx context.Context, sess shared.Session, room upstream.Room) (*upstream.Room, error) {
	if strings.TrimSpace(room.Number) == "" {
		return nil, errs.Mark(ErrRoomNumberRequired, shared.ErrInvalidInput)
	}
	created, err := c.gateway.CreateRoom(ctx, sess.AccessToken, room)
	return created, shared.MapUpstreamError(err)
}

func (c *catalogCommandsImpl) UpdateRoom(ctx context.Context, sess shared.Session, number string, room upstream.Room) (*upstream.Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, errs.Mark(ErrRoomNumberRequired, shared.ErrInvalidInput)
	}
	if room.Number == "" {
		room.Number = number
	}
	updated, err := c.gateway.UpdateRoom(ctx, sess.AccessToken, number, room)
	return updated, shared.MapUpstreamError(err)
}

func (c *catalogCommandsImpl) DeleteRoom(ctx context.Context, sess shared.Session, number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.Mark(ErrRoomNumberRequired, shared.ErrInvalidInput)
	}
	return shared.MapUpstreamError(c.gateway.DeleteRoom(ctx, sess.AccessToken, number))
}

func (c *catalogCommandsImpl) CreateRoomStandard(ctx context.Context, sess shared.Session, standard upstream.RoomStandard) (*upstream.RoomStandard, error) {
	created, err := c.gateway.CreateRoomStandard(ctx, sess.AccessToken, standard)
	return created, shared.MapUpstreamError(err)
}

func (c *catalogCommandsImpl) UpdateRoomStandard(ctx context.Context, sess shared.Session, id int64, standard upstream.RoomStandard) (*upstream.RoomStandard, error) {
	updated, err := c.gateway.UpdateRoomStandard(ctx, sess.AccessToken, id, standard)
	return updated, shared.MapUpstreamError(err)
}

func (c *catalogCommandsImpl) DeleteRoomStandard(ctx context.Context, sess shared.Session, id int64) error {
	return shared.MapUpstreamError(c.gateway.DeleteRoomStandard(ctx, sess.AccessToken, id))
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, sess shared.Session, service upstream.Service) (*upstream.Service, error) {
	created, err := c.gateway.CreateService(ctx, sess.AccessToken, service)
	return created, shared.MapUpstreamError(err)
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, sess shared.Session, id int64, service upstream.Service) (*upstream.Service, error) {
	updated, err := c.gateway.UpdateService(ctx, sess.AccessToken, id, service)
	return updated, shared.MapUpstreamError(err)
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, sess shared.Session, id int64) error {
	return shared.MapUpstreamError(c.gateway.DeleteService(ctx, sess.AccessToken, id))
}
