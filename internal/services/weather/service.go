package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrMissingAPIKey    = errors.New("API key is required")
	ErrLocationNotFound = errors.New("location not found")
)

// Config holds configuration for the weather service
type Config struct {
	// APIKey is the weather provider API key
	APIKey string

	// BaseURL overrides the provider endpoint
	BaseURL string

	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client

	// Logger is optional; the standard logger is used when nil
	Logger *logrus.Logger
}

// service implements the Service interface
type service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// New creates a new weather service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// GetWeather fetches current conditions for a location
func (s *service) GetWeather(ctx context.Context, input *GetWeatherInput) (*GetWeatherOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Location == "" {
		return nil, errors.New("location is required")
	}

	query := url.Values{}
	query.Set("key", s.apiKey)
	query.Set("q", input.Location)

	endpoint := fmt.Sprintf("%s/current.json?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.WithError(err).WithField("location", input.Location).Error("weather request failed")
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			// Provider code 1006 means the location could not be matched
			if errResp.Error.Code == 1006 {
				return nil, ErrLocationNotFound
			}
			return nil, fmt.Errorf("weather provider: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var current currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	return &GetWeatherOutput{
		Location:   current.Location.Name,
		Region:     current.Location.Region,
		Country:    current.Location.Country,
		Condition:  current.Current.Condition.Text,
		TempC:      current.Current.TempC,
		TempF:      current.Current.TempF,
		FeelsLikeF: current.Current.FeelsLikeF,
		Humidity:   current.Current.Humidity,
	}, nil
}
