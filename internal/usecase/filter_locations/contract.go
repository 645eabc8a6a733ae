package filter_locations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	// FindActiveWithMinCapacity получает активные локации с вместимостью не меньше заданной
	FindActiveWithMinCapacity(ctx context.Context, minCapacity int) ([]*domain.Location, error)
}

// CompanyRepository интерфейс репозитория конфигурации компании
type CompanyRepository interface {
	// GetSingle получает единственную запись компании
	GetSingle(ctx context.Context) (*domain.Company, error)
}

// AvailabilityRepository интерфейс репозитория бронирований курсов
type AvailabilityRepository interface {
	// FindForLocationAndWeekday получает бронирования локации на день недели,
	// чей курс пересекается с запрошенным диапазоном дат
	FindForLocationAndWeekday(
		ctx context.Context,
		locationID uuid.UUID,
		weekday domain.WeekDay,
		queryStart time.Time,
		queryEnd time.Time,
	) ([]*domain.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
