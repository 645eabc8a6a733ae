package get_course_registrations

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
)

const msgInvalidCourseID = "некорректный ID курса"

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

// Handle GET /api/v1/courses/{courseId}/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courseID, err := uuid.Parse(vars["courseId"])
	if err != nil {
		h.logger.Warn("GET /courses/{id}/registrations - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	result, err := h.service.GetByCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error("GET /courses/{id}/registrations - Failed to fetch registrations: course_id=%s, error=%v",
			courseID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courses/{id}/registrations - Registrations retrieved: course_id=%s, count=%d",
		courseID, len(result.Registrations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
