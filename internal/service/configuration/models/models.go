package models

import (
	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// AddressData почтовый адрес компании
type AddressData struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// OpeningTimeData окно работы компании в один день недели
type OpeningTimeData struct {
	Weekday string          `json:"weekday"`
	Start   types.TimeOfDay `json:"start"`
	End     types.TimeOfDay `json:"end"`
}

// SaveCompanyRequest запрос на сохранение конфигурации компании.
// Часы работы заменяются целиком
type SaveCompanyRequest struct {
	Name         string            `json:"name"`
	ContactEmail string            `json:"contactEmail,omitempty"`
	ContactPhone string            `json:"contactPhone,omitempty"`
	Address      AddressData       `json:"address"`
	OpeningTimes []OpeningTimeData `json:"openingTimes"`
}

// ToDomainCompany конвертирует запрос в domain модель
func (r *SaveCompanyRequest) ToDomainCompany() *domain.Company {
	company := &domain.Company{
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Address: domain.Address{
			Street:     r.Address.Street,
			Number:     r.Address.Number,
			PostalCode: r.Address.PostalCode,
			City:       r.Address.City,
		},
	}

	for _, ot := range r.OpeningTimes {
		company.OpeningTimes = append(company.OpeningTimes, domain.OpeningTime{
			Weekday: domain.WeekDay(ot.Weekday),
			Start:   ot.Start,
			End:     ot.End,
		})
	}

	return company
}

// CompanyResponse ответ с конфигурацией компании
type CompanyResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	ContactEmail string            `json:"contactEmail,omitempty"`
	ContactPhone string            `json:"contactPhone,omitempty"`
	Address      AddressData       `json:"address"`
	OpeningTimes []OpeningTimeData `json:"openingTimes"`
}

// FromDomainCompany конвертирует domain модель в DTO
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	if c == nil {
		return nil
	}

	resp := &CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Address: AddressData{
			Street:     c.Address.Street,
			Number:     c.Address.Number,
			PostalCode: c.Address.PostalCode,
			City:       c.Address.City,
		},
		OpeningTimes: make([]OpeningTimeData, 0, len(c.OpeningTimes)),
	}

	for _, ot := range c.OpeningTimes {
		resp.OpeningTimes = append(resp.OpeningTimes, OpeningTimeData{
			Weekday: string(ot.Weekday),
			Start:   ot.Start,
			End:     ot.End,
		})
	}

	return resp
}
