package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// Request модели

// ScheduleSlotData один еженедельный слот расписания курса
type ScheduleSlotData struct {
	LocationID uuid.UUID       `json:"locationId"`
	TrainerID  uuid.UUID       `json:"trainerId"`
	Weekday    string          `json:"weekday"`
	Start      types.TimeOfDay `json:"start"`
	End        types.TimeOfDay `json:"end"`
}

// SaveCourseRequest запрос на создание или обновление курса
// Пустой ID означает создание. Schedule полностью заменяет текущее расписание
type SaveCourseRequest struct {
	ID              *uuid.UUID         `json:"id,omitempty"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         time.Time          `json:"endDate"`
	MaxParticipants int                `json:"maxParticipants"`
	PictureURLs     []string           `json:"pictureUrls,omitempty"`
	Schedule        []ScheduleSlotData `json:"schedule"`
}

// ToDomainCourse конвертирует запрос в domain модель
func (r *SaveCourseRequest) ToDomainCourse() *domain.Course {
	course := &domain.Course{
		Title:           r.Title,
		Description:     r.Description,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		MaxParticipants: r.MaxParticipants,
		PictureURLs:     r.PictureURLs,
	}
	if r.ID != nil {
		course.ID = *r.ID
	}

	for _, slot := range r.Schedule {
		course.Availabilities = append(course.Availabilities, domain.Availability{
			LocationID: slot.LocationID,
			TrainerID:  slot.TrainerID,
			Weekday:    domain.WeekDay(slot.Weekday),
			Start:      slot.Start,
			End:        slot.End,
		})
	}

	return course
}

// Response модели

// ScheduleSlotResponse слот расписания в ответе
type ScheduleSlotResponse struct {
	ID         uuid.UUID       `json:"id"`
	LocationID uuid.UUID       `json:"locationId"`
	TrainerID  uuid.UUID       `json:"trainerId"`
	Weekday    string          `json:"weekday"`
	Start      types.TimeOfDay `json:"start"`
	End        types.TimeOfDay `json:"end"`
}

// CourseResponse ответ с данными курса
type CourseResponse struct {
	ID              uuid.UUID              `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	StartDate       time.Time              `json:"startDate"`
	EndDate         time.Time              `json:"endDate"`
	MaxParticipants int                    `json:"maxParticipants"`
	PictureURLs     []string               `json:"pictureUrls"`
	Schedule        []ScheduleSlotResponse `json:"schedule"`
}

// CourseListResponse ответ со списком курсов
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// FromDomainCourse конвертирует domain модель в DTO
func FromDomainCourse(c *domain.Course) *CourseResponse {
	if c == nil {
		return nil
	}

	resp := &CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		MaxParticipants: c.MaxParticipants,
		PictureURLs:     c.PictureURLs,
		Schedule:        make([]ScheduleSlotResponse, 0, len(c.Availabilities)),
	}
	if resp.PictureURLs == nil {
		resp.PictureURLs = []string{}
	}

	for _, a := range c.Availabilities {
		resp.Schedule = append(resp.Schedule, ScheduleSlotResponse{
			ID:         a.ID,
			LocationID: a.LocationID,
			TrainerID:  a.TrainerID,
			Weekday:    string(a.Weekday),
			Start:      a.Start,
			End:        a.End,
		})
	}

	return resp
}

// FromDomainCourseList конвертирует список domain моделей в DTO
func FromDomainCourseList(courses []*domain.Course) *CourseListResponse {
	resp := &CourseListResponse{Courses: make([]CourseResponse, 0, len(courses))}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, *FromDomainCourse(c))
	}
	return resp
}
