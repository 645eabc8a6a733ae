package courses

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetAll(ctx context.Context) ([]*domain.Course, error)
	GetNotEnded(ctx context.Context, ref time.Time) ([]*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityRepository интерфейс репозитория слотов расписания
type AvailabilityRepository interface {
	FindByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Availability, error)
	ReplaceForCourse(ctx context.Context, courseID uuid.UUID, availabilities []domain.Availability) error
	DeleteByCourse(ctx context.Context, courseID uuid.UUID) error
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
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
