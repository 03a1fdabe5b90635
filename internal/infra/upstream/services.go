package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"hotel-front/internal/domain/schedule"
)

func (c *Client) ListServices(ctx context.Context, token string) ([]Service, error) {
	var services []Service
	err := c.do(ctx, call{op: "list_services", method: http.MethodGet, path: "services/", token: token}, &services)
	return services, err
}

func (c *Client) CreateService(ctx context.Context, token string, service Service) (*Service, error) {
	var created Service
	err := c.do(ctx, call{op: "create_service", method: http.MethodPost, path: "services/", token: token, body: service}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateService(ctx context.Context, token string, id int64, service Service) (*Service, error) {
	var updated Service
	err := c.do(ctx, call{
		op:     "update_service",
		method: http.MethodPut,
		path:   servicePath(id),
		token:  token,
		body:   service,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteService(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{op: "delete_service", method: http.MethodDelete, path: servicePath(id), token: token}, nil)
}

// ServiceSlots lists the slots of a service whose dates fall in [from, to).
// Bounds are YYYY-MM-DD.
func (c *Client) ServiceSlots(ctx context.Context, token string, serviceID int64, from, to string) ([]schedule.Slot, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var slots []schedule.Slot
	err := c.do(ctx, call{
		op:     "service_slots",
		method: http.MethodGet,
		path:   servicePath(serviceID) + "slots/",
		query:  query,
		token:  token,
	}, &slots)
	return slots, err
}

func servicePath(id int64) string {
	return "services/" + strconv.FormatInt(id, 10) + "/"
}
