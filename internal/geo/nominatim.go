package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	nominatimEndpoint  = "https://nominatim.openstreetmap.org/search"
	nominatimUserAgent = "sarmelo-delivery/1.0"
)

// Nominatim geocodes through the OpenStreetMap Nominatim API. It needs no
// credentials, which makes it the fallback of last resort in the chain.
type Nominatim struct {
	endpoint string
	client   *http.Client
}

// NewNominatim creates a Nominatim provider.
func NewNominatim() *Nominatim {
	return &Nominatim{
		endpoint: nominatimEndpoint,
		client:   http.DefaultClient,
	}
}

// Name implements Provider.
func (n *Nominatim) Name() string {
	return "osm"
}

// Geocode implements Provider.
func (n *Nominatim) Geocode(ctx context.Context, address string) (Point, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("failed to build nominatim request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Point{}, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(payload) == 0 {
		return Point{}, ErrNoResults
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", payload[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", payload[0].Lon, err)
	}

	return Point{Lat: lat, Lon: lon, Source: n.Name()}, nil
}
