package unregister_course

import (
	"context"

	"github.com/google/uuid"
)

type RegistrationsService interface {
	Unregister(ctx context.Context, id uuid.UUID, externalUserID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
