// Package fleet is a thin client for the Tesla Fleet API. Responses are
// treated as opaque JSON: the caller receives the upstream status and raw
// body and decides how to surface them.
package fleet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Fleet API client for the given base URL, e.g.
// "https://fleet-api.prd.na.vn.cloud.tesla.com".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Vehicles lists the vehicles on the account.
func (c *Client) Vehicles(ctx context.Context, accessToken string) (int, []byte, error) {
	return c.get(ctx, accessToken, "/api/1/vehicles", nil)
}

// VehicleData fetches the data payload for one vehicle. Endpoints, when
// given, narrow the payload to the named subsystems via the "endpoints"
// query parameter (e.g. "drive_state", "charge_state").
func (c *Client) VehicleData(ctx context.Context, accessToken, vehicleID string, endpoints ...string) (int, []byte, error) {
	path := fmt.Sprintf("/api/1/vehicles/%s/vehicle_data", url.PathEscape(vehicleID))

	var query url.Values
	if len(endpoints) > 0 {
		query = url.Values{"endpoints": {strings.Join(endpoints, ";")}}
	}

	return c.get(ctx, accessToken, path, query)
}

func (c *Client) get(ctx context.Context, accessToken, path string, query url.Values) (int, []byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("fleet.get %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("fleet.get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("fleet.get %s: read body: %w", path, err)
	}

	return resp.StatusCode, body, nil
}
