package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const positionstackEndpoint = "http://api.positionstack.com/v1/forward"

// Positionstack geocodes through the Positionstack forward-geocoding API.
// It requires an API key; without one every call fails with
// ErrMissingCredentials so the resolver skips it.
type Positionstack struct {
	key      string
	endpoint string
	client   *http.Client
}

// NewPositionstack creates a Positionstack provider with the given API key.
func NewPositionstack(key string) *Positionstack {
	return &Positionstack{
		key:      key,
		endpoint: positionstackEndpoint,
		client:   http.DefaultClient,
	}
}

// Name implements Provider.
func (p *Positionstack) Name() string {
	return "positionstack"
}

// Geocode implements Provider.
func (p *Positionstack) Geocode(ctx context.Context, address string) (Point, error) {
	if p.key == "" {
		return Point{}, ErrMissingCredentials
	}

	params := url.Values{}
	params.Set("access_key", p.key)
	params.Set("query", address)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("failed to build positionstack request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("positionstack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("positionstack returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Point{}, fmt.Errorf("failed to decode positionstack response: %w", err)
	}

	if len(payload.Data) == 0 {
		return Point{}, ErrNoResults
	}

	return Point{
		Lat:    payload.Data[0].Latitude,
		Lon:    payload.Data[0].Longitude,
		Source: p.Name(),
	}, nil
}
