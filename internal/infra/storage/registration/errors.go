package registration

import "errors"

var (
	// ErrRegistrationNotFound возвращается, когда регистрация не найдена
	ErrRegistrationNotFound = errors.New("registration.repository: registration not found")

	// ErrAlreadyRegistered возвращается при повторной регистрации участника на курс
	ErrAlreadyRegistered = errors.New("registration.repository: participant already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("registration.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("registration.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("registration.repository: failed to scan row")
)
