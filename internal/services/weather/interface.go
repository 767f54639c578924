package weather

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/ivangarzab/kluvs-bot/internal/services/weather Service

// Service provides current weather conditions for a location
type Service interface {
	GetWeather(ctx context.Context, input *GetWeatherInput) (*GetWeatherOutput, error)
}
