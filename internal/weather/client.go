// Package weather fetches current conditions and the 5-day/3-hour forecast
// from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

var (
	// ErrNotFound is returned when the current-weather lookup fails, which is
	// how OpenWeatherMap reports an unknown city.
	ErrNotFound = errors.New("city not found or API error")
	// ErrMissingAPIKey is returned when no API key was configured.
	ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key")
)

// Query selects a location by city name or by coordinates.
type Query struct {
	City     string
	Lat, Lon float64
	ByCoords bool
}

// CityQuery queries by city name.
func CityQuery(city string) Query { return Query{City: city} }

// CoordsQuery queries by latitude and longitude.
func CoordsQuery(lat, lon float64) Query { return Query{Lat: lat, Lon: lon, ByCoords: true} }

func (q Query) String() string {
	if q.ByCoords {
		return fmt.Sprintf("%.4f,%.4f", q.Lat, q.Lon)
	}
	return q.City
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.ByCoords {
		v.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	} else {
		v.Set("q", q.City)
	}
	return v
}

// Provider retrieves a weather report for a location.
type Provider interface {
	Report(ctx context.Context, q Query, units Units) (*Report, error)
}

// Client talks to the OpenWeatherMap 2.5 API.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client with a request timeout.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Report fetches current conditions and the forecast in parallel.
func (c *Client) Report(ctx context.Context, q Query, units Units) (*Report, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var (
		current   Current
		forecast  Forecast
		forecastE error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.get(ctx, "weather", q, units, &current); err != nil {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil
	})
	g.Go(func() error {
		// A missing forecast still leaves a usable report.
		forecastE = c.get(ctx, "forecast", q, units, &forecast)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if forecastE != nil {
		log.Printf("[Weather] forecast for %s unavailable: %v", q, forecastE)
	}

	return &Report{Current: current, Forecast: forecast, Units: units}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q Query, units Units, out any) error {
	v := q.values()
	v.Set("appid", c.APIKey)
	v.Set("units", string(units))
	u := c.BaseURL + "/" + endpoint + "?" + v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: status %d: %s", endpoint, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}
