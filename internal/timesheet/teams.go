package timesheet

import (
	"context"
	"net/http"
)

// ListTeams returns the teams the authenticated user belongs to.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var page Page[Team]
	if err := c.do(ctx, http.MethodGet, "/v1/teams", nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}
