package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-front/internal/domain/bill"
)

func (c *Client) ListGuests(ctx context.Context, token string) ([]Guest, error) {
	var guests []Guest
	err := c.do(ctx, call{op: "list_guests", method: http.MethodGet, path: "guests/", token: token}, &guests)
	return guests, err
}

// BillElements fetches the typed elements of a bill. Elements of an unknown
// type fail the whole call.
func (c *Client) BillElements(ctx context.Context, token string, billID int64) (*bill.Bill, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{
		op:     "bill_elements",
		method: http.MethodGet,
		path:   "bills/" + strconv.FormatInt(billID, 10) + "/elements/",
		token:  token,
	}, &raw)
	if err != nil {
		return nil, err
	}

	elements, err := bill.DecodeElements(raw)
	if err != nil {
		return nil, &Error{Kind: KindServer, Op: "bill_elements", Status: http.StatusOK, Detail: "malformed bill", Err: err}
	}
	return &bill.Bill{ID: billID, Elements: elements}, nil
}
