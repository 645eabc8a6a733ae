package filter_locations

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// Request модель запроса на подбор локаций
type Request struct {
	MinCapacity     int       // Минимальная вместимость локации (число участников курса)
	DurationMinutes int       // Длительность курса в минутах (кратна 30)
	StartDate       time.Time // Начало диапазона дат курса
	EndDate         time.Time // Конец диапазона дат курса (включительно)
}

// DaySlots доступные стартовые окна локации по дням недели
type DaySlots map[domain.WeekDay][]domain.TimeRange

// Response модель ответа: подходящие локации и их свободные окна
// Каждая подходящая локация присутствует в map, даже если окон нет -
// так вызывающая сторона отличает "нет подходящих локаций" от
// "локации есть, но свободного времени нет"
type Response struct {
	Locations map[uuid.UUID]DaySlots
}
