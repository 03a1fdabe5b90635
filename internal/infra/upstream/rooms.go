package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AvailableRooms lists rooms free for the whole stay that fit guests.
// Dates are YYYY-MM-DD.
func (c *Client) AvailableRooms(ctx context.Context, token, checkIn, checkOut string, guests int) ([]Room, error) {
	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)
	if guests > 0 {
		query.Set("guests", strconv.Itoa(guests))
	}

	var rooms []Room
	err := c.do(ctx, call{
		op:     "available_rooms",
		method: http.MethodGet,
		path:   "rooms/available/",
		query:  query,
		token:  token,
	}, &rooms)
	return rooms, err
}

func (c *Client) ListRooms(ctx context.Context, token string) ([]Room, error) {
	var rooms []Room
	err := c.do(ctx, call{op: "list_rooms", method: http.MethodGet, path: "rooms/", token: token}, &rooms)
	return rooms, err
}

func (c *Client) CreateRoom(ctx context.Context, token string, room Room) (*Room, error) {
	var created Room
	err := c.do(ctx, call{op: "create_room", method: http.MethodPost, path: "rooms/", token: token, body: room}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateRoom(ctx context.Context, token, number string, room Room) (*Room, error) {
	var updated Room
	err := c.do(ctx, call{
		op:     "update_room",
		method: http.MethodPut,
		path:   "rooms/" + url.PathEscape(number) + "/",
		token:  token,
		body:   room,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteRoom(ctx context.Context, token, number string) error {
	return c.do(ctx, call{
		op:     "delete_room",
		method: http.MethodDelete,
		path:   "rooms/" + url.PathEscape(number) + "/",
		token:  token,
	}, nil)
}

func (c *Client) ListRoomStandards(ctx context.Context, token string) ([]RoomStandard, error) {
	var standards []RoomStandard
	err := c.do(ctx, call{op: "list_room_standards", method: http.MethodGet, path: "room-standards/", token: token}, &standards)
	return standards, err
}

func (c *Client) CreateRoomStandard(ctx context.Context, token string, standard RoomStandard) (*RoomStandard, error) {
	var created RoomStandard
	err := c.do(ctx, call{
		op:     "create_room_standard",
		method: http.MethodPost,
		path:   "room-standards/",
		token:  token,
		body:   standard,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateRoomStandard(ctx context.Context, token string, id int64, standard RoomStandard) (*RoomStandard, error) {
	var updated RoomStandard
	err := c.do(ctx, call{
		op:     "update_room_standard",
		method: http.MethodPut,
		path:   "room-standards/" + strconv.FormatInt(id, 10) + "/",
		token:  token,
		body:   standard,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteRoomStandard(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		op:     "delete_room_standard",
		method: http.MethodDelete,
		path:   "room-standards/" + strconv.FormatInt(id, 10) + "/",
		token:  token,
	}, nil)
}
