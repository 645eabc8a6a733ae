package save_location

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations/models"
)

type LocationsService interface {
	Save(ctx context.Context, req *models.SaveLocationRequest) (*models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
