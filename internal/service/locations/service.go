package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	locationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/location"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations/models"
)

// Service сервис управления локациями
type Service struct {
	locationRepo     LocationRepository
	availabilityRepo AvailabilityRepository
	courseDeleter    CourseDeleter
	txManager        TxManager
	logger           Logger
}

func New(
	locationRepo LocationRepository,
	availabilityRepo AvailabilityRepository,
	courseDeleter CourseDeleter,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		locationRepo:     locationRepo,
		availabilityRepo: availabilityRepo,
		courseDeleter:    courseDeleter,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetAll возвращает все локации компании
func (s *Service) GetAll(ctx context.Context) (*models.LocationListResponse, error) {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("[LocationsService.GetAll] Failed to fetch locations: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLocationList(locations), nil
}

// GetByID возвращает локацию по идентификатору
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.LocationResponse, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return nil, fmt.Errorf("%w: GetByID - location %s", ErrLocationNotFound, id)
		}
		s.logger.Error("[LocationsService.GetByID] Failed to fetch location %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLocation(location), nil
}

// Save создаёт локацию при пустом ID, иначе обновляет существующую
func (s *Service) Save(ctx context.Context, req *models.SaveLocationRequest) (*models.LocationResponse, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	location := req.ToDomainLocation()

	if location.ID == uuid.Nil {
		created, err := s.locationRepo.Create(ctx, location)
		if err != nil {
			s.logger.Error("[LocationsService.Save] Failed to create location: %v", err)
			return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("[LocationsService.Save] Location created: %s", created.ID)
		return models.FromDomainLocation(created), nil
	}

	updated, err := s.locationRepo.Update(ctx, location)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return nil, fmt.Errorf("%w: Save - location %s", ErrLocationNotFound, location.ID)
		}
		s.logger.Error("[LocationsService.Save] Failed to update location %s: %v", location.ID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("[LocationsService.Save] Location updated: %s", updated.ID)

	return models.FromDomainLocation(updated), nil
}

// Delete удаляет локацию. Курсы, привязанные к локации, удаляются каскадно
// вместе с их расписанием и регистрациями в одной транзакции
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return fmt.Errorf("%w: Delete - location %s", ErrLocationNotFound, id)
		}
		s.logger.Error("[LocationsService.Delete] Failed to fetch location %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		availabilities, err := s.availabilityRepo.FindByLocation(ctx, id)
		if err != nil {
			return fmt.Errorf("find availabilities: %w", err)
		}

		// Один курс может занимать несколько слотов в локации
		seen := make(map[uuid.UUID]struct{})
		for _, availability := range availabilities {
			if _, ok := seen[availability.CourseID]; ok {
				continue
			}
			seen[availability.CourseID] = struct{}{}

			if err := s.courseDeleter.Delete(ctx, availability.CourseID); err != nil {
				return fmt.Errorf("delete course %s: %w", availability.CourseID, err)
			}
		}

		return s.locationRepo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("[LocationsService.Delete] Failed to delete location %s: %v", id, err)
		return fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}
	s.logger.Info("[LocationsService.Delete] Location deleted: %s", id)

	return nil
}

func validateSaveRequest(req *models.SaveLocationRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: Save - empty location name", ErrInvalidInput)
	}
	if req.Capacity < 0 {
		return fmt.Errorf("%w: Save - negative capacity", ErrInvalidInput)
	}
	for _, eq := range req.Equipment {
		if eq.Name == "" {
			return fmt.Errorf("%w: Save - empty equipment name", ErrInvalidInput)
		}
		if eq.Amount < 0 {
			return fmt.Errorf("%w: Save - negative equipment amount", ErrInvalidInput)
		}
	}
	return nil
}
