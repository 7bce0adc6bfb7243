package services

import (
	"github.com/brownlk99/blue-prince-ml-sub000/internal/repositories/runs"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/services/housemap"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	HouseMapService housemap.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	RunRepository runs.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	runRepo := cfg.RunRepository
	if runRepo == nil {
		runRepo = runs.NewInMemory(&runs.InMemoryConfig{
			TimeProvider:  &runs.SystemTimeProvider{},
			UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		})
	}

	houseMapService := housemap.NewService(&housemap.ServiceConfig{
		Repository: runRepo,
	})

	return &Provider{
		HouseMapService: houseMapService,
	}
}
