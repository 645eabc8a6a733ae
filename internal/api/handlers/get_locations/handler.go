package get_locations

import (
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
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

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to fetch locations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations - Locations retrieved successfully: count=%d", len(result.Locations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
