package delete_course

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses"
)

const (
	msgInvalidCourseID = "некорректный ID курса"
	msgCourseNotFound  = "курс не найден"
)

type Handler struct {
	service CoursesService
	logger  Logger
}

func NewHandler(service CoursesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/courses/{courseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courseID, err := uuid.Parse(vars["courseId"])
	if err != nil {
		h.logger.Warn("DELETE /courses/{id} - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	if err := h.service.Delete(r.Context(), courseID); err != nil {
		switch {
		case errors.Is(err, courses.ErrCourseNotFound):
			h.logger.Warn("DELETE /courses/{id} - Course not found: course_id=%s", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		default:
			h.logger.Error("DELETE /courses/{id} - Failed to delete course: course_id=%s, error=%v", courseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courses/{id} - Course deleted successfully: course_id=%s", courseID)
	handlers.RespondNoContent(w)
}
