package get_course_registrations

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

type RegistrationsService interface {
	GetByCourse(ctx context.Context, courseID uuid.UUID) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
