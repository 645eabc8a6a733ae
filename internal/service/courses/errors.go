package courses

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("courses.service: course not found")

	// ErrLocationNotFound возвращается, когда локация из расписания не найдена
	ErrLocationNotFound = errors.New("courses.service: location not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("courses.service: invalid input")

	// ErrInternal возвращается при внутренней ошибке сервиса
	ErrInternal = errors.New("courses.service: internal error")
)
