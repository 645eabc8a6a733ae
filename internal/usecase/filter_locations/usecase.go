package filter_locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	companyRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/company"
)

// UseCase use case подбора локаций: для каждого подходящего по вместимости
// активного места вычисляет свободные стартовые окна по дням недели
type UseCase struct {
	locationRepo     LocationRepository
	companyRepo      CompanyRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	locationRepo LocationRepository,
	companyRepo CompanyRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationRepo:     locationRepo,
		companyRepo:      companyRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute выполняет подбор локаций
// Вычисление синхронное и только читающее; любая ошибка хранилища прерывает
// весь запрос, частичный результат не возвращается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FilterLocations: minCapacity=%d, duration=%d, range=%s..%s",
		req.MinCapacity, req.DurationMinutes,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных - до любых обращений к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FilterLocations: validation failed: %v", err)
		return nil, err
	}

	// 2. Уровень 1: только активные локации с достаточной вместимостью
	locations, err := uc.locationRepo.FindActiveWithMinCapacity(ctx, req.MinCapacity)
	if err != nil {
		uc.logger.Error("FilterLocations: failed to get locations: %v", err)
		return nil, fmt.Errorf("%w: failed to get locations: %v", ErrInternal, err)
	}

	result := &Response{Locations: make(map[uuid.UUID]DaySlots, len(locations))}

	if len(locations) == 0 {
		uc.logger.Info("FilterLocations: no active locations with capacity >= %d", req.MinCapacity)
		return result, nil
	}

	// Каждая подходящая локация получает запись в результате, даже если
	// свободных окон не найдется ни в один день
	for _, location := range locations {
		result.Locations[location.ID] = DaySlots{}
	}

	// 3. Конфигурация компании загружается один раз на весь запрос
	// Отсутствие компании - не ошибка: без часов работы нет доступного времени
	company, err := uc.companyRepo.GetSingle(ctx)
	if err != nil {
		if !errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Error("FilterLocations: failed to get company: %v", err)
			return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
		}
		uc.logger.Info("FilterLocations: no company configured, no bookable time anywhere")
		company = nil
	}

	// 4. Уровень 2: доступные слоты по часам работы на каждый день недели
	for _, day := range domain.AllWeekDays {
		daySlots := openingSlots(company, day)
		if len(daySlots) == 0 {
			continue
		}

		for _, location := range locations {
			// Уровень 3: убираем слоты, занятые бронированиями курсов,
			// чей диапазон дат пересекается с запрошенным
			bookings, err := uc.availabilityRepo.FindForLocationAndWeekday(
				ctx, location.ID, day, req.StartDate, req.EndDate,
			)
			if err != nil {
				uc.logger.Error("FilterLocations: failed to get bookings for location=%s day=%s: %v",
					location.ID, day, err)
				return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			freeSlots := removeBookedSlots(daySlots, bookings)

			// Уровень 4: стартовые окна, в которые помещается запрошенная
			// длительность
			ranges := startableRanges(freeSlots, req.DurationMinutes)
			if len(ranges) > 0 {
				result.Locations[location.ID][day] = ranges
			}
		}
	}

	uc.logger.Info("FilterLocations: %d qualifying locations", len(result.Locations))
	return result, nil
}
