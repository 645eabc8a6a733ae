package models

import (
	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
)

// Request модели

// EquipmentData единица оборудования локации
type EquipmentData struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Amount      int    `json:"amount"`
}

// SaveLocationRequest запрос на создание или обновление локации
// Пустой ID означает создание
type SaveLocationRequest struct {
	ID                *uuid.UUID      `json:"id,omitempty"`
	Name              string          `json:"name"`
	Capacity          int             `json:"capacity"`
	Active            bool            `json:"active"`
	StatusDescription string          `json:"statusDescription,omitempty"`
	Equipment         []EquipmentData `json:"equipment,omitempty"`
}

// ToDomainLocation конвертирует запрос в domain модель
func (r *SaveLocationRequest) ToDomainLocation() *domain.Location {
	location := &domain.Location{
		Name:     r.Name,
		Capacity: r.Capacity,
		Status: domain.LocationStatus{
			Active:      r.Active,
			Description: r.StatusDescription,
		},
	}
	if r.ID != nil {
		location.ID = *r.ID
	}

	for _, eq := range r.Equipment {
		location.Equipment = append(location.Equipment, domain.Equipment{
			Name:        eq.Name,
			Description: eq.Description,
			Amount:      eq.Amount,
		})
	}

	return location
}

// Response модели

// LocationResponse ответ с данными локации
type LocationResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Capacity          int             `json:"capacity"`
	Active            bool            `json:"active"`
	StatusDescription string          `json:"statusDescription,omitempty"`
	Equipment         []EquipmentData `json:"equipment"`
}

// LocationListResponse ответ со списком локаций
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomainLocation конвертирует domain модель в DTO
func FromDomainLocation(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}

	resp := &LocationResponse{
		ID:                l.ID,
		Name:              l.Name,
		Capacity:          l.Capacity,
		Active:            l.Status.Active,
		StatusDescription: l.Status.Description,
		Equipment:         make([]EquipmentData, 0, len(l.Equipment)),
	}

	for _, eq := range l.Equipment {
		resp.Equipment = append(resp.Equipment, EquipmentData{
			Name:        eq.Name,
			Description: eq.Description,
			Amount:      eq.Amount,
		})
	}

	return resp
}

// FromDomainLocationList конвертирует список domain моделей в DTO
func FromDomainLocationList(locations []*domain.Location) *LocationListResponse {
	resp := &LocationListResponse{Locations: make([]LocationResponse, 0, len(locations))}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, *FromDomainLocation(l))
	}
	return resp
}
