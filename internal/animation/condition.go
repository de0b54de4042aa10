package animation

import "strings"

// Condition is the normalized weather tag the controller animates.
type Condition string

const (
	ConditionNone         Condition = ""
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionClouds       Condition = "clouds"
	ConditionThunderstorm Condition = "thunderstorm"
)

// Known reports whether c has an animation.
func (c Condition) Known() bool {
	switch c {
	case ConditionRain, ConditionSnow, ConditionClouds, ConditionThunderstorm:
		return true
	}
	return false
}

// weatherConditions maps OpenWeatherMap "main" groups to animation tags.
var weatherConditions = map[string]Condition{
	"rain":         ConditionRain,
	"drizzle":      ConditionRain,
	"snow":         ConditionSnow,
	"clouds":       ConditionClouds,
	"clear":        ConditionClouds,
	"mist":         ConditionClouds,
	"fog":          ConditionClouds,
	"haze":         ConditionClouds,
	"smoke":        ConditionClouds,
	"dust":         ConditionClouds,
	"sand":         ConditionClouds,
	"ash":          ConditionClouds,
	"squall":       ConditionRain,
	"tornado":      ConditionThunderstorm,
	"thunderstorm": ConditionThunderstorm,
}

// ConditionFromWeather converts a raw weather-API condition group (e.g.
// "Drizzle") into an animation tag. Unrecognized groups fall back to clouds.
func ConditionFromWeather(raw string) Condition {
	if c, ok := weatherConditions[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return ConditionClouds
}
