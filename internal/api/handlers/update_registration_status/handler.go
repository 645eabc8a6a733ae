package update_registration_status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

const (
	msgInvalidRegistrationID = "некорректный ID регистрации"
	msgInvalidBody           = "некорректное тело запроса"
	msgRegistrationNotFound  = "регистрация не найдена"
)

type Handler struct {
	service RegistrationsService
	logger  Logger
}

func NewHandler(service RegistrationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/registrations/{registrationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	registrationID, err := uuid.Parse(vars["registrationId"])
	if err != nil {
		h.logger.Warn("PATCH /registrations/{id}/status - Invalid registration ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRegistrationID)
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PATCH /registrations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.AssignStatus(r.Context(), registrationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("PATCH /registrations/{id}/status - Invalid status: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, registrations.ErrRegistrationNotFound):
			h.logger.Warn("PATCH /registrations/{id}/status - Registration not found: registration_id=%s", registrationID)
			handlers.RespondNotFound(w, msgRegistrationNotFound)

		default:
			h.logger.Error("PATCH /registrations/{id}/status - Failed to update status: registration_id=%s, error=%v",
				registrationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /registrations/{id}/status - Status updated: registration_id=%s, status=%s",
		registrationID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
