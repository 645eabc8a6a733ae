package configuration

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// CompanyRepository интерфейс репозитория конфигурации компании
type CompanyRepository interface {
	GetSingle(ctx context.Context) (*domain.Company, error)
	Save(ctx context.Context, company *domain.Company) (*domain.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
