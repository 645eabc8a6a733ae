package save_course

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses/models"
)

type CoursesService interface {
	Save(ctx context.Context, req *models.SaveCourseRequest) (*models.CourseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
