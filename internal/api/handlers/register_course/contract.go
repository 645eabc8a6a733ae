package register_course

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

type RegistrationsService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegistrationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
