package delete_location

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgLocationNotFound  = "локация не найдена"
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

// Handle DELETE /api/v1/locations/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := uuid.Parse(vars["locationId"])
	if err != nil {
		h.logger.Warn("DELETE /locations/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	if err := h.service.Delete(r.Context(), locationID); err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("DELETE /locations/{id} - Location not found: location_id=%s", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("DELETE /locations/{id} - Failed to delete location: location_id=%s, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /locations/{id} - Location deleted successfully: location_id=%s", locationID)
	handlers.RespondNoContent(w)
}
