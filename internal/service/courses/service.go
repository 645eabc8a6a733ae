package courses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	courseRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/course"
	locationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/location"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses/models"
)

// Service сервис управления курсами и их еженедельным расписанием
type Service struct {
	courseRepo       CourseRepository
	availabilityRepo AvailabilityRepository
	locationRepo     LocationRepository
	txManager        TxManager
	logger           Logger
}

func New(
	courseRepo CourseRepository,
	availabilityRepo AvailabilityRepository,
	locationRepo LocationRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		courseRepo:       courseRepo,
		availabilityRepo: availabilityRepo,
		locationRepo:     locationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetAll возвращает все курсы вместе с расписанием
func (s *Service) GetAll(ctx context.Context) (*models.CourseListResponse, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("[CoursesService.GetAll] Failed to fetch courses: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	for _, course := range courses {
		if err := s.attachSchedule(ctx, course); err != nil {
			return nil, err
		}
	}

	return models.FromDomainCourseList(courses), nil
}

// GetNotEnded возвращает курсы, которые ещё не закончились на текущую дату
func (s *Service) GetNotEnded(ctx context.Context) (*models.CourseListResponse, error) {
	courses, err := s.courseRepo.GetNotEnded(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		s.logger.Error("[CoursesService.GetNotEnded] Failed to fetch courses: %v", err)
		return nil, fmt.Errorf("%w: GetNotEnded - repository error: %v", ErrInternal, err)
	}

	for _, course := range courses {
		if err := s.attachSchedule(ctx, course); err != nil {
			return nil, err
		}
	}

	return models.FromDomainCourseList(courses), nil
}

// GetByID возвращает курс по идентификатору вместе с расписанием
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return nil, fmt.Errorf("%w: GetByID - course %s", ErrCourseNotFound, id)
		}
		s.logger.Error("[CoursesService.GetByID] Failed to fetch course %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.attachSchedule(ctx, course); err != nil {
		return nil, err
	}

	return models.FromDomainCourse(course), nil
}

// Save создаёт курс при пустом ID, иначе обновляет существующий.
// Расписание заменяется целиком в одной транзакции с записью курса
func (s *Service) Save(ctx context.Context, req *models.SaveCourseRequest) (*models.CourseResponse, error) {
	if err := s.validateSaveRequest(ctx, req); err != nil {
		return nil, err
	}

	course := req.ToDomainCourse()

	var saved *domain.Course
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if course.ID == uuid.Nil {
			saved, err = s.courseRepo.Create(ctx, course)
		} else {
			saved, err = s.courseRepo.Update(ctx, course)
		}
		if err != nil {
			return err
		}

		return s.availabilityRepo.ReplaceForCourse(ctx, saved.ID, course.Availabilities)
	})
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return nil, fmt.Errorf("%w: Save - course %s", ErrCourseNotFound, course.ID)
		}
		s.logger.Error("[CoursesService.Save] Failed to save course: %v", err)
		return nil, fmt.Errorf("%w: Save - transaction error: %v", ErrInternal, err)
	}

	if err := s.attachSchedule(ctx, saved); err != nil {
		return nil, err
	}
	s.logger.Info("[CoursesService.Save] Course saved: %s", saved.ID)

	return models.FromDomainCourse(saved), nil
}

// Delete удаляет курс вместе с расписанием. Регистрации участников
// удаляются каскадно на уровне БД
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return fmt.Errorf("%w: Delete - course %s", ErrCourseNotFound, id)
		}
		s.logger.Error("[CoursesService.Delete] Failed to fetch course %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.availabilityRepo.DeleteByCourse(ctx, id); err != nil {
			return fmt.Errorf("delete availabilities: %w", err)
		}
		return s.courseRepo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("[CoursesService.Delete] Failed to delete course %s: %v", id, err)
		return fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}
	s.logger.Info("[CoursesService.Delete] Course deleted: %s", id)

	return nil
}

func (s *Service) attachSchedule(ctx context.Context, course *domain.Course) error {
	availabilities, err := s.availabilityRepo.FindByCourse(ctx, course.ID)
	if err != nil {
		s.logger.Error("[CoursesService] Failed to fetch schedule for course %s: %v", course.ID, err)
		return fmt.Errorf("%w: attachSchedule - repository error: %v", ErrInternal, err)
	}

	course.Availabilities = course.Availabilities[:0]
	for _, a := range availabilities {
		course.Availabilities = append(course.Availabilities, *a)
	}
	return nil
}

func (s *Service) validateSaveRequest(ctx context.Context, req *models.SaveCourseRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: Save - empty course title", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: Save - start and end dates are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: Save - end date before start date", ErrInvalidInput)
	}
	if req.MaxParticipants <= 0 {
		return fmt.Errorf("%w: Save - max participants must be positive", ErrInvalidInput)
	}

	for _, slot := range req.Schedule {
		if !domain.WeekDay(slot.Weekday).IsValid() {
			return fmt.Errorf("%w: Save - unknown weekday %q", ErrInvalidInput, slot.Weekday)
		}
		if !domain.OnGrid(slot.Start) || !domain.OnGrid(slot.End) {
			return fmt.Errorf("%w: Save - schedule times must align to %d-minute slots",
				ErrInvalidInput, domain.SlotDurationMinutes)
		}
		if !slot.Start.Before(slot.End) {
			return fmt.Errorf("%w: Save - schedule slot start must precede end", ErrInvalidInput)
		}

		if _, err := s.locationRepo.GetByID(ctx, slot.LocationID); err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				return fmt.Errorf("%w: Save - location %s", ErrLocationNotFound, slot.LocationID)
			}
			s.logger.Error("[CoursesService.Save] Failed to fetch location %s: %v", slot.LocationID, err)
			return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
	}

	return nil
}
