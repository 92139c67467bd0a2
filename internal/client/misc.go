package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAPIHealthStatus reports whether the service is up.
func (c *Client) GetAPIHealthStatus(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/resources/status/api", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateAccessToken issues a WebSDK access token. externalUserID and
// ttlSeconds are optional; zero values are left out of the query.
func (c *Client) GenerateAccessToken(ctx context.Context, levelName, externalUserID string, ttlSeconds int) (*AccessToken, error) {
	q := url.Values{"levelName": {levelName}}
	if externalUserID != "" {
		q.Set("externalUserId", externalUserID)
	}
	if ttlSeconds > 0 {
		q.Set("ttlInSecs", strconv.Itoa(ttlSeconds))
	}
	var out AccessToken
	if err := c.doJSON(ctx, http.MethodPost, "/resources/accessTokens?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
