package update_company_config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/configuration"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/configuration/models"
)

const msgInvalidBody = "некорректное тело запроса"

type Handler struct {
	service ConfigurationService
	logger  Logger
}

func NewHandler(service ConfigurationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/company
// Часы работы заменяются целиком телом запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /company - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.SaveCompany(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, configuration.ErrInvalidInput):
			h.logger.Warn("PUT /company - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /company - Failed to save company: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /company - Company configuration saved: company_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
