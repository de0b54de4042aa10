package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultLocateURL = "http://ip-api.com/json"

// ErrLocationUnavailable is returned when no position could be determined.
var ErrLocationUnavailable = errors.New("unable to retrieve your location")

// Locator approximates the user's position from their public IP address.
type Locator struct {
	URL  string
	HTTP *http.Client
}

// NewLocator creates a locator against ip-api.com.
func NewLocator(timeout time.Duration) *Locator {
	return &Locator{URL: DefaultLocateURL, HTTP: &http.Client{Timeout: timeout}}
}

type ipLocation struct {
	Status string  `json:"status"`
	City   string  `json:"city"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// Locate returns a coordinates query for the current position.
func (l *Locator) Locate(ctx context.Context) (Query, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return Query{}, err
	}
	resp, err := l.HTTP.Do(req)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Query{}, fmt.Errorf("%w: status %d", ErrLocationUnavailable, resp.StatusCode)
	}
	var loc ipLocation
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return Query{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	if loc.Status != "success" {
		return Query{}, ErrLocationUnavailable
	}
	return CoordsQuery(loc.Lat, loc.Lon), nil
}
