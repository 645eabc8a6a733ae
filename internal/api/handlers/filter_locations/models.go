package filter_locations

import (
	"strconv"
	"time"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	filterLocations "github.com/skillhub/SkillHub-SchedulingService/internal/usecase/filter_locations"
)

// TimeRangeData стартовый интервал в ответе
type TimeRangeData struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterLocationsResponse HTTP response model.
// Ключ внешней map - ID локации, внутренней - день недели
type FilterLocationsResponse struct {
	Locations map[string]map[string][]TimeRangeData `json:"locations"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(minCapacityStr, durationStr, startDateStr, endDateStr string) (*filterLocations.Request, error) {
	minCapacity, err := strconv.Atoi(minCapacityStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &filterLocations.Request{
		MinCapacity:     minCapacity,
		DurationMinutes: duration,
		StartDate:       startDate,
		EndDate:         endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *filterLocations.Response) *FilterLocationsResponse {
	out := &FilterLocationsResponse{Locations: make(map[string]map[string][]TimeRangeData, len(resp.Locations))}

	for locationID, days := range resp.Locations {
		dayMap := make(map[string][]TimeRangeData, len(days))
		for weekday, ranges := range days {
			slots := make([]TimeRangeData, 0, len(ranges))
			for _, r := range ranges {
				slots = append(slots, TimeRangeData{
					Start: r.Start.String(),
					End:   r.End.String(),
				})
			}
			dayMap[string(weekday)] = slots
		}
		out.Locations[locationID.String()] = dayMap
	}

	return out
}
