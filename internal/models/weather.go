package models

// WeatherData is the subset of the OpenWeatherMap current-weather payload
// the weather module uses.
type WeatherData struct {
	Name    string             `json:"name"`
	Main    *WeatherMain       `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	Wind    *WeatherWind       `json:"wind"`
}

// WeatherMain holds temperature and humidity readings.
type WeatherMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
}

// WeatherCondition describes the sky.
type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// WeatherWind holds wind readings.
type WeatherWind struct {
	Speed float64 `json:"speed"`
}

// Condition returns the first condition's description, or its main group
// when the description is empty.
func (w *WeatherData) Condition() string {
	if w == nil || len(w.Weather) == 0 {
		return ""
	}
	if w.Weather[0].Description != "" {
		return w.Weather[0].Description
	}
	return w.Weather[0].Main
}

// Valid reports whether w carries enough data to comment on: a city name,
// the main readings, the wind and at least one condition.
func (w *WeatherData) Valid() bool {
	return w != nil && w.Name != "" && w.Main != nil && w.Wind != nil && len(w.Weather) > 0
}
