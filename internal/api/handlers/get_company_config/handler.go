package get_company_config

import (
	"errors"
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/configuration"
)

const msgCompanyNotFound = "конфигурация компании не найдена"

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

// Handle GET /api/v1/company
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCompany(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, configuration.ErrCompanyNotFound):
			h.logger.Warn("GET /company - Company not configured")
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /company - Failed to fetch company: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /company - Company configuration retrieved: company_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
