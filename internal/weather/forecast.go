package weather

import "strings"

const (
	hourlySlots = 8 // 24 hours of 3-hour steps
	dailySlots  = 5
	stepsPerDay = 8
)

// Hourly returns the next 24 hours of the forecast.
func Hourly(f *Forecast) []Item {
	if len(f.List) <= hourlySlots {
		return f.List
	}
	return f.List[:hourlySlots]
}

// Daily picks one entry per day: the noon step of each day, or every 8th step
// when the noon steps do not cover five days.
func Daily(f *Forecast) []Item {
	var days []Item
	for _, it := range f.List {
		if strings.Contains(it.DtTxt, "12:00:00") {
			days = append(days, it)
		}
	}
	if len(days) < dailySlots {
		days = days[:0]
		for i := 0; i < len(f.List); i += stepsPerDay {
			days = append(days, f.List[i])
		}
	}
	if len(days) > dailySlots {
		days = days[:dailySlots]
	}
	return days
}
