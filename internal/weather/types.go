package weather

// Condition is one entry of the OpenWeatherMap "weather" array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Readings is the "main" block shared by current and forecast responses.
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// Current is the /data/2.5/weather response.
type Current struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather    []Condition `json:"weather"`
	Main       Readings    `json:"main"`
	Visibility int         `json:"visibility"`
	Wind       Wind        `json:"wind"`
	Dt         int64       `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// Primary returns the first weather condition, or a zero value.
func (c *Current) Primary() Condition {
	if len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

// Item is one 3-hour step of the forecast.
type Item struct {
	Dt      int64       `json:"dt"`
	Main    Readings    `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	DtTxt   string      `json:"dt_txt"`
}

// Primary returns the first weather condition, or a zero value.
func (i Item) Primary() Condition {
	if len(i.Weather) == 0 {
		return Condition{}
	}
	return i.Weather[0]
}

// Forecast is the /data/2.5/forecast response: 5 days in 3-hour steps.
type Forecast struct {
	Cnt  int    `json:"cnt"`
	List []Item `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// Report pairs current conditions with the forecast fetched alongside them.
type Report struct {
	Current  Current
	Forecast Forecast
	Units    Units
}
