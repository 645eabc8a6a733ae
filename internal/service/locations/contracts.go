package locations

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	GetAll(ctx context.Context) ([]*domain.Location, error)
	Update(ctx context.Context, location *domain.Location) (*domain.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityRepository интерфейс репозитория бронирований
type AvailabilityRepository interface {
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Availability, error)
}

// CourseDeleter удаляет курс вместе с его расписанием и регистрациями
// Реализуется сервисом курсов
type CourseDeleter interface {
	Delete(ctx context.Context, courseID uuid.UUID) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
