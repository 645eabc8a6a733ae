package update_registration_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

type RegistrationsService interface {
	AssignStatus(ctx context.Context, id uuid.UUID, status string) (*models.RegistrationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
