package save_course

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidDates     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgCourseNotFound   = "курс не найден"
	msgLocationNotFound = "локация из расписания не найдена"
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

// Handle POST /api/v1/courses
// Тело запроса без ID создаёт курс, с ID - обновляет вместе с расписанием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /courses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /courses - Invalid date or time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.Save(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrInvalidInput):
			h.logger.Warn("POST /courses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, courses.ErrCourseNotFound):
			h.logger.Warn("POST /courses - Course not found: %v", err)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, courses.ErrLocationNotFound):
			h.logger.Warn("POST /courses - Location not found: %v", err)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("POST /courses - Failed to save course: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("POST /courses - Course saved successfully: course_id=%s", result.ID)
	handlers.RespondJSON(w, status, result)
}
