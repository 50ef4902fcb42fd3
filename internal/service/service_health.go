package service

import (
	"context"

	"github.com/teller-rehab/teller-api/models"
)

// StatusHealthy is reported while the process is able to serve requests.
const StatusHealthy = "healthy"

type healthService struct{}

func NewHealthService() HealthService {
	return &healthService{}
}

func (s *healthService) GetHealth(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{Status: StatusHealthy}
}
