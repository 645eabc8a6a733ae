package configuration

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда конфигурация компании ещё не создана
	ErrCompanyNotFound = errors.New("configuration.service: company not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("configuration.service: invalid input")

	// ErrInternal возвращается при внутренней ошибке сервиса
	ErrInternal = errors.New("configuration.service: internal error")
)
