// Package geocode resolves a coordinate to a best-effort city and country
// name through the Nominatim reverse endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type Client struct {
	httpClient *http.Client
	BaseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// Reverse returns the locality and country for a coordinate. Lookups are
// best-effort: any failure yields nil city and country, and the caller falls
// back to showing raw coordinates.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (city, country *string) {
	endpoint := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json", c.BaseURL, lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil
	}
	req.Header.Set("Accept-Language", "id")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("reverse geocode request failed")
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("reverse geocode non-ok status")
		return nil, nil
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, nil
	}

	addr := body.Address
	name := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.County, addr.State)
	if name == "" {
		name = "Lokasi Ditemukan"
	}
	city = &name
	if addr.Country != "" {
		country = &addr.Country
	}
	return city, country
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
