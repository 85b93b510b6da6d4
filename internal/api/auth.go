package api

import (
	"context"
	"net/http"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// Profile fetches the user identified by the current token
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	return c.user(ctx, PathProfile)
}

// User fetches the signed-in user's record
func (c *Client) User(ctx context.Context) (*domain.User, error) {
	return c.user(ctx, PathUser)
}

func (c *Client) user(ctx context.Context, path string) (*domain.User, error) {
	data, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decodeData(data, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}
