// Package display turns weather reports and animation elements into what the
// renderers draw: formatted readings, background palettes and particle
// positions. It has no renderer dependency so the desktop and terminal
// front-ends share it.
package display

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

// Temperature rounds to whole degrees with the unit suffix.
func Temperature(t float64, u weather.Units) string {
	rounded := int(math.Round(t))
	if u == weather.Imperial {
		return fmt.Sprintf("%d°F", rounded)
	}
	return fmt.Sprintf("%d°C", rounded)
}

// WindSpeed formats the API's wind speed: m/s for metric, mph for imperial.
func WindSpeed(speed float64, u weather.Units) string {
	if u == weather.Imperial {
		return fmt.Sprintf("%.1f mph", speed)
	}
	return fmt.Sprintf("%.1f m/s", speed)
}

// Visibility converts metres to km or miles.
func Visibility(metres int, u weather.Units) string {
	if u == weather.Imperial {
		return fmt.Sprintf("%.1f mi", float64(metres)*0.000621371)
	}
	return fmt.Sprintf("%.1f km", float64(metres)/1000)
}

// Pressure formats hectopascals.
func Pressure(hpa int) string { return fmt.Sprintf("%d hPa", hpa) }

// Humidity formats a relative humidity percentage.
func Humidity(pct int) string { return fmt.Sprintf("%d%%", pct) }

// LocalClock formats a unix timestamp at the city's UTC offset as "06:04 AM".
func LocalClock(unix int64, offsetSeconds int) string {
	t := time.Unix(unix+int64(offsetSeconds), 0).UTC()
	return t.Format("03:04 PM")
}

// Date formats like "Monday, July 1".
func Date(unix int64) string {
	return time.Unix(unix, 0).Format("Monday, January 2")
}

// Hour formats like "3 PM".
func Hour(unix int64) string {
	return time.Unix(unix, 0).Format("3 PM")
}

// Day formats like "Mon".
func Day(unix int64) string {
	return time.Unix(unix, 0).Format("Mon")
}

// Location formats "City, CC".
func Location(c *weather.Current) string {
	if c.Sys.Country == "" {
		return c.Name
	}
	return c.Name + ", " + c.Sys.Country
}

// Readings returns the label/value pairs of the detail grid.
func Readings(c *weather.Current, u weather.Units) [][2]string {
	return [][2]string{
		{"Humidity", Humidity(c.Main.Humidity)},
		{"Wind", WindSpeed(c.Wind.Speed, u)},
		{"Feels like", Temperature(c.Main.FeelsLike, u)},
		{"Pressure", Pressure(c.Main.Pressure)},
		{"Visibility", Visibility(c.Visibility, u)},
		{"Sunrise", LocalClock(c.Sys.Sunrise, c.Timezone)},
		{"Sunset", LocalClock(c.Sys.Sunset, c.Timezone)},
	}
}

// Status is the one-line footer: the fetch state, then the animation
// controller's condition, counts and frame rate.
func Status(loading bool, err error, c *animation.Controller) string {
	var b strings.Builder
	switch {
	case loading:
		b.WriteString("Loading...")
	case err != nil:
		b.WriteString("Error: " + err.Error())
	default:
		b.WriteString("Ready")
	}

	if c.Inert() {
		b.WriteString(" | animations off")
		return b.String()
	}
	if c.Reduced() {
		b.WriteString(" | reduced motion")
		return b.String()
	}
	if cur := c.Current(); cur != animation.ConditionNone {
		fmt.Fprintf(&b, " | %s %d", cur, c.Counts().For(cur))
	}
	if c.Monitoring() && len(c.FPSSamples()) > 0 {
		fmt.Fprintf(&b, " | %.0f fps", c.AverageFPS())
	}
	if n := c.Degradations(); n > 0 {
		fmt.Fprintf(&b, " | reduced x%d", n)
	}
	return b.String()
}
