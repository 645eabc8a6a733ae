package filter_locations

import (
	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// openingSlots возвращает слоты сетки, открытые по расписанию компании в
// указанный день недели
// Если компании нет, расписание пустое или на этот день нет записи -
// возвращает пустой список (это не ошибка: без настроенных часов работы
// бронировать нечего)
//
// Слот s попадает в результат, если open <= s < close. Момент закрытия
// никогда не является стартовым слотом: курс не может начаться ровно в
// момент закрытия
func openingSlots(company *domain.Company, day domain.WeekDay) []types.TimeOfDay {
	if company == nil || len(company.OpeningTimes) == 0 {
		return []types.TimeOfDay{}
	}

	opening := company.OpeningTimeFor(day)
	if opening == nil {
		return []types.TimeOfDay{}
	}

	slots := make([]types.TimeOfDay, 0, domain.SlotsPerDay)
	for _, slot := range domain.AllSlots() {
		if !slot.Before(opening.Start) && !slot.After(opening.End) && !slot.Equal(opening.End) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// removeBookedSlots убирает из кандидатов слоты, занятые бронированиями
// Работает с копией, порядок входного списка сохраняется
//
// Для бронирования [bookedStart, bookedEnd) удаляется каждый слот s с
// bookedStart <= s <= bookedEnd - 30min: слот, начинающийся ровно за 30 минут
// до конца бронирования, - последняя целиком занятая ячейка и удаляется;
// слот, начинающийся ровно в bookedEnd, свободен
//
// Примеры для бронирования [10:00, 11:00):
// - 09:30 остается (заканчивается к началу бронирования)
// - 10:00 и 10:30 удаляются (целиком внутри бронирования)
// - 11:00 остается (начинается в момент окончания)
//
// Удаление идемпотентно: повторное применение тех же бронирований ничего
// не меняет
func removeBookedSlots(candidates []types.TimeOfDay, bookings []*domain.Availability) []types.TimeOfDay {
	result := make([]types.TimeOfDay, 0, len(candidates))
	result = append(result, candidates...)

	for _, booking := range bookings {
		lastBooked := booking.End.AddMinutes(-domain.SlotDurationMinutes)

		kept := result[:0]
		for _, slot := range result {
			if !slot.Before(booking.Start) && !slot.After(lastBooked) {
				continue
			}
			kept = append(kept, slot)
		}
		result = kept
	}

	return result
}

// startableRanges строит список валидных стартовых окон для запрошенной
// длительности
// Кандидат ts принимается, если каждый слот сетки от ts до
// ts + duration - 30min включительно (с шагом 30 минут) присутствует в
// freeSlots; тогда курс [ts, ts+duration) целиком помещается в свободное время
//
// Перечисление ведется по каждому стартовому слоту, а НЕ по максимальным
// непрерывным отрезкам: если свободный отрезок длиннее запрошенной
// длительности, соседние старты дают пересекающиеся окна, и все они попадают
// в результат. Потребители полагаются на такое плотное перечисление
//
// Длительность в одну ячейку сетки (30 минут) тривиально принимает каждый
// свободный слот
func startableRanges(freeSlots []types.TimeOfDay, durationMinutes int) []domain.TimeRange {
	ranges := make([]domain.TimeRange, 0, len(freeSlots))

	for _, ts := range freeSlots {
		// Начало последней получасовой ячейки, которую занял бы курс
		end := ts.AddMinutes(durationMinutes - domain.SlotDurationMinutes)

		fits := true
		for step := ts; !step.After(end); step = domain.SlotAfter(step) {
			if !containsSlot(freeSlots, step) {
				fits = false
				break
			}
		}

		if fits {
			ranges = append(ranges, domain.TimeRange{Start: ts, End: domain.SlotAfter(end)})
		}
	}

	return ranges
}

// containsSlot проверяет наличие слота в списке
// Список дня не длиннее 48 элементов, линейный поиск достаточен
func containsSlot(slots []types.TimeOfDay, target types.TimeOfDay) bool {
	for _, s := range slots {
		if s.Equal(target) {
			return true
		}
	}
	return false
}
