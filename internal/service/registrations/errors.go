package registrations

import "errors"

var (
	// ErrRegistrationNotFound возвращается, когда регистрация не найдена
	ErrRegistrationNotFound = errors.New("registrations.service: registration not found")

	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("registrations.service: course not found")

	// ErrAlreadyRegistered возвращается при повторной регистрации на курс
	ErrAlreadyRegistered = errors.New("registrations.service: participant already registered")

	// ErrForbidden возвращается при попытке отменить чужую регистрацию
	ErrForbidden = errors.New("registrations.service: registration belongs to another participant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("registrations.service: invalid input")

	// ErrInternal возвращается при внутренней ошибке сервиса
	ErrInternal = errors.New("registrations.service: internal error")
)
