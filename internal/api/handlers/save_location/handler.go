package save_location

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations/models"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgLocationNotFound = "локация не найдена"
)

type Handler struct {
	service LocationsService
	logger  Logger
}

func NewHandler(service LocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations
// Тело запроса без ID создаёт локацию, с ID - обновляет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /locations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("POST /locations - Location not found: %v", err)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("POST /locations - Failed to save location: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("POST /locations - Location saved successfully: location_id=%s", result.ID)
	handlers.RespondJSON(w, status, result)
}
