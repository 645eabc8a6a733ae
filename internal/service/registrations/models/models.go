package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию участника на курс.
// Участник идентифицируется внешним идентификатором каталога пользователей
// и создаётся локально при первой регистрации
type RegisterRequest struct {
	CourseID       uuid.UUID `json:"courseId"`
	ExternalUserID string    `json:"externalUserId"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса регистрации
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// RegistrationResponse ответ с данными регистрации
type RegistrationResponse struct {
	ID               uuid.UUID `json:"id"`
	CourseID         uuid.UUID `json:"courseId"`
	ParticipantID    uuid.UUID `json:"participantId"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
}

// RegistrationListResponse ответ со списком регистраций курса
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

// FromDomainRegistration конвертирует domain модель в DTO
func FromDomainRegistration(r *domain.CourseRegistration) *RegistrationResponse {
	if r == nil {
		return nil
	}
	return &RegistrationResponse{
		ID:               r.ID,
		CourseID:         r.CourseID,
		ParticipantID:    r.ParticipantID,
		RegistrationDate: r.RegistrationDate,
		Status:           string(r.Status),
	}
}

// FromDomainRegistrationList конвертирует список domain моделей в DTO
func FromDomainRegistrationList(regs []*domain.CourseRegistration) *RegistrationListResponse {
	resp := &RegistrationListResponse{Registrations: make([]RegistrationResponse, 0, len(regs))}
	for _, r := range regs {
		resp.Registrations = append(resp.Registrations, *FromDomainRegistration(r))
	}
	return resp
}
