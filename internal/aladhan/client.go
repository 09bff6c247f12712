// Package aladhan is the client for the Al Adhan REST API: daily prayer
// timings and Gregorian-to-Hijri date conversion.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// RequestDateLayout is the DD-MM-YYYY form the API expects in timing paths.
const RequestDateLayout = "02-01-2006"

// Client talks to the Al Adhan API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point at an httptest server.
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// Timings fetches the prayer timings for the given date, coordinate, and
// calculation method. Failures surface as a single error; the caller decides
// whether to re-invoke.
func (c *Client) Timings(ctx context.Context, date time.Time, lat, lng float64, method int) (model.Timings, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lng))
	params.Set("method", fmt.Sprintf("%d", method))

	endpoint := fmt.Sprintf("%s/timings/%s?%s", c.BaseURL, date.Format(RequestDateLayout), params.Encode())

	var resp timingsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to retrieve prayer times: %w", err)
	}
	if resp.Code != http.StatusOK || resp.Data.Timings == nil {
		return nil, fmt.Errorf("failed to retrieve prayer times: api code %d (%s)", resp.Code, resp.Status)
	}

	return model.Timings(resp.Data.Timings), nil
}

// HijriDate is the converted Islamic date.
type HijriDate struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Display formats the date the way the companion shows it, e.g. "2 Ramadan 1447 H".
func (h HijriDate) Display() string {
	return fmt.Sprintf("%s %s %s H", h.Day, h.Month, h.Year)
}

type gToHResponse struct {
	Code int `json:"code"`
	Data struct {
		Hijri struct {
			Day   string `json:"day"`
			Month struct {
				En string `json:"en"`
			} `json:"month"`
			Year string `json:"year"`
		} `json:"hijri"`
	} `json:"data"`
}

// GregorianToHijri converts a Gregorian date via the gToH endpoint.
func (c *Client) GregorianToHijri(ctx context.Context, date time.Time) (HijriDate, error) {
	endpoint := fmt.Sprintf("%s/gToH/%s", c.BaseURL, date.Format(RequestDateLayout))

	var resp gToHResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return HijriDate{}, fmt.Errorf("hijri conversion failed: %w", err)
	}
	if resp.Code != http.StatusOK {
		return HijriDate{}, fmt.Errorf("hijri conversion failed: api code %d", resp.Code)
	}

	return HijriDate{
		Day:   resp.Data.Hijri.Day,
		Month: resp.Data.Hijri.Month.En,
		Year:  resp.Data.Hijri.Year,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
