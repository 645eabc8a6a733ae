package get_courses

import (
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses/models"
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

// Handle GET /api/v1/courses
// Query params: notEnded=true - только курсы, которые ещё не закончились
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.CourseListResponse
		err    error
	)

	if r.URL.Query().Get("notEnded") == "true" {
		result, err = h.service.GetNotEnded(r.Context())
	} else {
		result, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		h.logger.Error("GET /courses - Failed to fetch courses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courses - Courses retrieved successfully: count=%d", len(result.Courses))
	handlers.RespondJSON(w, http.StatusOK, result)
}
