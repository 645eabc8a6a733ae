package get_courses

import (
	"context"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses/models"
)

type CoursesService interface {
	GetAll(ctx context.Context) (*models.CourseListResponse, error)
	GetNotEnded(ctx context.Context) (*models.CourseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
