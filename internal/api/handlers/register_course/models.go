package register_course

import (
	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

// RegisterRequest HTTP request model. Идентификатор участника берётся
// из заголовка X-User-ID, тело несёт контактные данные для первой регистрации
type RegisterRequest struct {
	CourseID  uuid.UUID `json:"courseId"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
}

// ToServiceRequest создает запрос сервиса
func (r *RegisterRequest) ToServiceRequest(externalUserID string) *models.RegisterRequest {
	return &models.RegisterRequest{
		CourseID:       r.CourseID,
		ExternalUserID: externalUserID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
	}
}
