package configuration

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	companyRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/company"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/configuration/models"
)

// Service сервис конфигурации компании
type Service struct {
	companyRepo CompanyRepository
	logger      Logger
}

func New(companyRepo CompanyRepository, logger Logger) *Service {
	return &Service{companyRepo: companyRepo, logger: logger}
}

// GetCompany возвращает единственную запись конфигурации компании
func (s *Service) GetCompany(ctx context.Context) (*models.CompanyResponse, error) {
	company, err := s.companyRepo.GetSingle(ctx)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			return nil, fmt.Errorf("%w: GetCompany - no company configured", ErrCompanyNotFound)
		}
		s.logger.Error("[ConfigurationService.GetCompany] Failed to fetch company: %v", err)
		return nil, fmt.Errorf("%w: GetCompany - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompany(company), nil
}

// SaveCompany создаёт или обновляет запись конфигурации.
// Часы работы заменяются целиком
func (s *Service) SaveCompany(ctx context.Context, req *models.SaveCompanyRequest) (*models.CompanyResponse, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	company := req.ToDomainCompany()

	// Существующая запись сохраняет свой ID
	existing, err := s.companyRepo.GetSingle(ctx)
	if err != nil && !errors.Is(err, companyRepo.ErrCompanyNotFound) {
		s.logger.Error("[ConfigurationService.SaveCompany] Failed to fetch company: %v", err)
		return nil, fmt.Errorf("%w: SaveCompany - repository error: %v", ErrInternal, err)
	}
	if existing != nil {
		company.ID = existing.ID
		company.RegistrationDate = existing.RegistrationDate
	}

	saved, err := s.companyRepo.Save(ctx, company)
	if err != nil {
		s.logger.Error("[ConfigurationService.SaveCompany] Failed to save company: %v", err)
		return nil, fmt.Errorf("%w: SaveCompany - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("[ConfigurationService.SaveCompany] Company configuration saved: %s", saved.ID)

	return models.FromDomainCompany(saved), nil
}

func validateSaveRequest(req *models.SaveCompanyRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: SaveCompany - empty company name", ErrInvalidInput)
	}

	seen := make(map[domain.WeekDay]struct{}, len(req.OpeningTimes))
	for _, ot := range req.OpeningTimes {
		day := domain.WeekDay(ot.Weekday)
		if !day.IsValid() {
			return fmt.Errorf("%w: SaveCompany - unknown weekday %q", ErrInvalidInput, ot.Weekday)
		}
		if _, ok := seen[day]; ok {
			return fmt.Errorf("%w: SaveCompany - duplicate opening time for %s", ErrInvalidInput, day)
		}
		seen[day] = struct{}{}

		if !domain.OnGrid(ot.Start) || !domain.OnGrid(ot.End) {
			return fmt.Errorf("%w: SaveCompany - opening times must align to %d-minute slots",
				ErrInvalidInput, domain.SlotDurationMinutes)
		}
		if !ot.Start.Before(ot.End) {
			return fmt.Errorf("%w: SaveCompany - opening start must precede end", ErrInvalidInput)
		}
	}

	return nil
}
