package unregister_course

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/api/middleware"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations"
)

const (
	msgInvalidRegistrationID = "некорректный ID регистрации"
	msgMissingUserID         = "требуется заголовок X-User-ID"
	msgRegistrationNotFound  = "регистрация не найдена"
	msgForeignRegistration   = "нельзя отменить чужую регистрацию"
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

// Handle DELETE /api/v1/registrations/{registrationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	externalUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /registrations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	registrationID, err := uuid.Parse(vars["registrationId"])
	if err != nil {
		h.logger.Warn("DELETE /registrations/{id} - Invalid registration ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRegistrationID)
		return
	}

	if err := h.service.Unregister(r.Context(), registrationID, externalUserID); err != nil {
		switch {
		case errors.Is(err, registrations.ErrRegistrationNotFound):
			h.logger.Warn("DELETE /registrations/{id} - Registration not found: registration_id=%s", registrationID)
			handlers.RespondNotFound(w, msgRegistrationNotFound)

		case errors.Is(err, registrations.ErrForbidden):
			h.logger.Warn("DELETE /registrations/{id} - Foreign registration: registration_id=%s, user=%s",
				registrationID, externalUserID)
			handlers.RespondForbidden(w, msgForeignRegistration)

		default:
			h.logger.Error("DELETE /registrations/{id} - Failed to delete registration: registration_id=%s, error=%v",
				registrationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /registrations/{id} - Registration deleted successfully: registration_id=%s", registrationID)
	handlers.RespondNoContent(w)
}
