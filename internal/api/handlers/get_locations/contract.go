package get_locations

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations/models"
)

type LocationsService interface {
	GetAll(ctx context.Context) (*models.LocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
