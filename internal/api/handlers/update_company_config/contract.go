package update_company_config

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/configuration/models"
)

type ConfigurationService interface {
	SaveCompany(ctx context.Context, req *models.SaveCompanyRequest) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
