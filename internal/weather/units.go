package weather

import "fmt"

// Units is the OpenWeatherMap unit system.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// ParseUnits accepts "metric" or "imperial".
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case Metric, Imperial:
		return Units(s), nil
	}
	return "", fmt.Errorf("unknown units %q", s)
}

// Toggle returns the other unit system.
func (u Units) Toggle() Units {
	if u == Imperial {
		return Metric
	}
	return Imperial
}
