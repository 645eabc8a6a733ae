package filter_locations

import (
	"fmt"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Отклоняет запрос до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.MinCapacity < 0 {
		return fmt.Errorf("%w: minCapacity must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	// Длительность вне получасовой сетки - вне контракта
	if req.DurationMinutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes must be a multiple of %d",
			ErrInvalidInput, domain.SlotDurationMinutes)
	}

	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d",
			ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return nil
}
