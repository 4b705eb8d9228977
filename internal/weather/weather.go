// Package weather looks up current conditions from OpenWeatherMap, or
// invents them when no API key is configured.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"curcunapanel/internal/chaos"
	"curcunapanel/internal/models"
)

// DefaultBaseURL is the OpenWeatherMap API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrUnavailable is returned when the provider call fails.
var ErrUnavailable = errors.New("weather provider unavailable")

// Source tells where a lookup's data came from.
type Source string

const (
	SourceProvider Source = "provider"
	SourceMock     Source = "mock"
)

var mockConditions = []string{"Clear", "Clouds", "Rain", "Snow"}

// Service resolves city weather.
type Service struct {
	apiKey  string
	baseURL string
	client  *http.Client
	dice    chaos.Dice
}

// New creates a weather service. An empty apiKey switches to mock data.
func New(apiKey, baseURL string, dice chaos.Dice) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		dice:    dice,
	}
}

// Configured reports whether a provider key is set.
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// Lookup returns the current weather for city in lang ("tr" or "en").
func (s *Service) Lookup(ctx context.Context, city, lang string) (*models.WeatherData, Source, error) {
	if !s.Configured() {
		return s.mock(city), SourceMock, nil
	}

	data, err := s.fetch(ctx, city, lang)
	if err != nil {
		return nil, SourceProvider, err
	}
	return data, SourceProvider, nil
}

func (s *Service) fetch(ctx context.Context, city, lang string) (*models.WeatherData, error) {
	if lang != "tr" {
		lang = "en"
	}
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")
	q.Set("lang", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "CurcunaPanel/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data models.WeatherData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return &data, nil
}

// mock invents plausible readings: 10-40°C, 30-80% humidity, 2-12 wind.
func (s *Service) mock(city string) *models.WeatherData {
	return &models.WeatherData{
		Name: city,
		Main: &models.WeatherMain{
			Temp:      math.Round(s.dice.Float64()*30 + 10),
			FeelsLike: math.Round(s.dice.Float64()*30 + 10),
			Humidity:  math.Round(s.dice.Float64()*50 + 30),
		},
		Weather: []models.WeatherCondition{{
			Main:        mockConditions[s.dice.IntN(len(mockConditions))],
			Description: "partly cloudy",
		}},
		Wind: &models.WeatherWind{
			Speed: math.Round(s.dice.Float64()*10 + 2),
		},
	}
}
