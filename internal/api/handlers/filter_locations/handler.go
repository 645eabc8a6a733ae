package filter_locations

import (
	"errors"
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	filterLocations "github.com/skillhub/SkillHub-SchedulingService/internal/usecase/filter_locations"
)

const (
	msgMissingParams = "параметры minCapacity, duration, startDate и endDate обязательны"
	msgInvalidParams = "некорректные параметры запроса, ожидаются целые minCapacity и duration и даты YYYY-MM-DD"
)

type Handler struct {
	useCase FilterLocationsUseCase
	logger  Logger
}

func NewHandler(useCase FilterLocationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/filter
// Query params: minCapacity, duration (minutes), startDate, endDate (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minCapacityStr := query.Get("minCapacity")
	durationStr := query.Get("duration")
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")

	if minCapacityStr == "" || durationStr == "" || startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /locations/filter - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(minCapacityStr, durationStr, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /locations/filter - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, filterLocations.ErrInvalidInput):
			h.logger.Warn("GET /locations/filter - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /locations/filter - Failed to filter locations: min_capacity=%d, duration=%d, error=%v",
				useCaseReq.MinCapacity, useCaseReq.DurationMinutes, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /locations/filter - Locations filtered successfully: min_capacity=%d, duration=%d, locations_count=%d",
		useCaseReq.MinCapacity, useCaseReq.DurationMinutes, len(result.Locations))
	handlers.RespondJSON(w, http.StatusOK, response)
}
