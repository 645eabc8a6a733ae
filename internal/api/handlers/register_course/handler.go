package register_course

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/api/middleware"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingUserID     = "требуется заголовок X-User-ID"
	msgCourseNotFound    = "курс не найден"
	msgAlreadyRegistered = "участник уже зарегистрирован на курс"
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

// Handle POST /api/v1/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	externalUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /registrations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest(externalUserID))
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("POST /registrations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, registrations.ErrCourseNotFound):
			h.logger.Warn("POST /registrations - Course not found: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, registrations.ErrAlreadyRegistered):
			h.logger.Warn("POST /registrations - Already registered: course_id=%s, user=%s", req.CourseID, externalUserID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyRegistered)

		default:
			h.logger.Error("POST /registrations - Failed to register: course_id=%s, user=%s, error=%v",
				req.CourseID, externalUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registrations - Registration created: registration_id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
