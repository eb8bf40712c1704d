package timesheet

import (
	"context"
	"net/http"
)

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/v1/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetSettings fetches the authenticated user's settings.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := c.do(ctx, http.MethodGet, "/v1/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
