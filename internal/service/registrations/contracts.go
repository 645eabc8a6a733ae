package registrations

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// RegistrationRepository интерфейс репозитория регистраций
type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseRegistration, error)
	GetByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.CourseRegistration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, account *domain.UserAccount) (*domain.UserAccount, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserAccount, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.UserAccount, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
