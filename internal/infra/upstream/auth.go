package upstream

import (
	"context"
	"net/http"
)

func (c *Client) ObtainToken(ctx context.Context, username, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, call{
		op:     "obtain_token",
		method: http.MethodPost,
		path:   "token/",
		body:   map[string]string{"username": username, "password": password},
	}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// RefreshToken exchanges a refresh token for a new access token. The API may
// rotate the refresh token; when it does not, the old one is kept.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, call{
		op:     "refresh_token",
		method: http.MethodPost,
		path:   "token/refresh/",
		body:   map[string]string{"refresh": refresh},
	}, &pair)
	if err != nil {
		return nil, err
	}
	if pair.Refresh == "" {
		pair.Refresh = refresh
	}
	return &pair, nil
}

func (c *Client) UserDetails(ctx context.Context, token string) (*UserDetails, error) {
	var details UserDetails
	err := c.do(ctx, call{
		op:     "user_details",
		method: http.MethodGet,
		path:   "users/me/",
		token:  token,
	}, &details)
	if err != nil {
		return nil, err
	}
	return &details, nil
}
