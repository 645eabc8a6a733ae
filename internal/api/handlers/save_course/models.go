package save_course

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses/models"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// ScheduleSlotData слот еженедельного расписания в HTTP запросе
type ScheduleSlotData struct {
	LocationID uuid.UUID `json:"locationId"`
	TrainerID  uuid.UUID `json:"trainerId"`
	Weekday    string    `json:"weekday"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
}

// SaveCourseRequest HTTP request model.
// Даты в формате YYYY-MM-DD, время в формате HH:MM
type SaveCourseRequest struct {
	ID              *uuid.UUID         `json:"id,omitempty"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
	MaxParticipants int                `json:"maxParticipants"`
	PictureURLs     []string           `json:"pictureUrls,omitempty"`
	Schedule        []ScheduleSlotData `json:"schedule"`
}

// ToServiceRequest создает запрос сервиса с парсингом дат и времени
func (r *SaveCourseRequest) ToServiceRequest() (*models.SaveCourseRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &models.SaveCourseRequest{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		StartDate:       startDate,
		EndDate:         endDate,
		MaxParticipants: r.MaxParticipants,
		PictureURLs:     r.PictureURLs,
	}

	for _, slot := range r.Schedule {
		start, err := types.ParseTimeOfDay(slot.Start)
		if err != nil {
			return nil, err
		}
		end, err := types.ParseTimeOfDay(slot.End)
		if err != nil {
			return nil, err
		}

		req.Schedule = append(req.Schedule, models.ScheduleSlotData{
			LocationID: slot.LocationID,
			TrainerID:  slot.TrainerID,
			Weekday:    slot.Weekday,
			Start:      start,
			End:        end,
		})
	}

	return req, nil
}
