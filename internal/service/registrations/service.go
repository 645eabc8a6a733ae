package registrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	courseRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/course"
	registrationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/registration"
	userRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/user"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

// Service сервис регистрации участников на курсы
type Service struct {
	registrationRepo RegistrationRepository
	courseRepo       CourseRepository
	userRepo         UserRepository
	txManager        TxManager
	logger           Logger
}

func New(
	registrationRepo RegistrationRepository,
	courseRepo CourseRepository,
	userRepo UserRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		registrationRepo: registrationRepo,
		courseRepo:       courseRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Register записывает участника на курс. Участник, неизвестный сервису,
// создаётся по внешнему идентификатору. Когда свободных мест нет,
// регистрация попадает в лист ожидания
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegistrationResponse, error) {
	if req.CourseID == uuid.Nil {
		return nil, fmt.Errorf("%w: Register - course id is required", ErrInvalidInput)
	}
	if req.ExternalUserID == "" {
		return nil, fmt.Errorf("%w: Register - external user id is required", ErrInvalidInput)
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return nil, fmt.Errorf("%w: Register - course %s", ErrCourseNotFound, req.CourseID)
		}
		s.logger.Error("[RegistrationsService.Register] Failed to fetch course %s: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	participant, err := s.findOrCreateParticipant(ctx, req)
	if err != nil {
		return nil, err
	}

	// Подсчёт мест и вставка в одной SERIALIZABLE транзакции,
	// иначе параллельные регистрации могут превысить max participants
	var created *domain.CourseRegistration
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		status, err := s.statusForCourse(ctx, course)
		if err != nil {
			return err
		}

		created, err = s.registrationRepo.Create(ctx, &domain.CourseRegistration{
			CourseID:         course.ID,
			ParticipantID:    participant.ID,
			RegistrationDate: time.Now().UTC(),
			Status:           status,
		})
		if err != nil {
			if errors.Is(err, registrationRepo.ErrAlreadyRegistered) {
				return fmt.Errorf("%w: Register - participant %s on course %s",
					ErrAlreadyRegistered, participant.ID, course.ID)
			}
			s.logger.Error("[RegistrationsService.Register] Failed to create registration: %v", err)
			return fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("[RegistrationsService.Register] Participant %s registered on course %s with status %s",
		participant.ID, course.ID, created.Status)

	return models.FromDomainRegistration(created), nil
}

// GetByCourse возвращает все регистрации курса
func (s *Service) GetByCourse(ctx context.Context, courseID uuid.UUID) (*models.RegistrationListResponse, error) {
	regs, err := s.registrationRepo.GetByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("[RegistrationsService.GetByCourse] Failed to fetch registrations for course %s: %v", courseID, err)
		return nil, fmt.Errorf("%w: GetByCourse - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRegistrationList(regs), nil
}

// AssignStatus меняет статус существующей регистрации
func (s *Service) AssignStatus(ctx context.Context, id uuid.UUID, status string) (*models.RegistrationResponse, error) {
	newStatus := domain.RegistrationStatus(status)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: AssignStatus - unknown status %q", ErrInvalidInput, status)
	}

	if err := s.registrationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			return nil, fmt.Errorf("%w: AssignStatus - registration %s", ErrRegistrationNotFound, id)
		}
		s.logger.Error("[RegistrationsService.AssignStatus] Failed to update registration %s: %v", id, err)
		return nil, fmt.Errorf("%w: AssignStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("[RegistrationsService.AssignStatus] Failed to fetch registration %s: %v", id, err)
		return nil, fmt.Errorf("%w: AssignStatus - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("[RegistrationsService.AssignStatus] Registration %s moved to status %s", id, newStatus)

	return models.FromDomainRegistration(updated), nil
}

// Unregister удаляет регистрацию участника
// Отменить регистрацию может только её владелец
func (s *Service) Unregister(ctx context.Context, id uuid.UUID, externalUserID string) error {
	reg, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			return fmt.Errorf("%w: Unregister - registration %s", ErrRegistrationNotFound, id)
		}
		s.logger.Error("[RegistrationsService.Unregister] Failed to fetch registration %s: %v", id, err)
		return fmt.Errorf("%w: Unregister - repository error: %v", ErrInternal, err)
	}

	participant, err := s.userRepo.GetByID(ctx, reg.ParticipantID)
	if err != nil {
		s.logger.Error("[RegistrationsService.Unregister] Failed to fetch participant %s: %v", reg.ParticipantID, err)
		return fmt.Errorf("%w: Unregister - repository error: %v", ErrInternal, err)
	}
	if participant.ExternalID != externalUserID {
		s.logger.Warn("[RegistrationsService.Unregister] User %q attempted to cancel registration %s of participant %s",
			externalUserID, id, reg.ParticipantID)
		return fmt.Errorf("%w: Unregister - registration %s", ErrForbidden, id)
	}

	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			return fmt.Errorf("%w: Unregister - registration %s", ErrRegistrationNotFound, id)
		}
		s.logger.Error("[RegistrationsService.Unregister] Failed to delete registration %s: %v", id, err)
		return fmt.Errorf("%w: Unregister - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("[RegistrationsService.Unregister] Registration %s deleted", id)

	return nil
}

func (s *Service) findOrCreateParticipant(ctx context.Context, req *models.RegisterRequest) (*domain.UserAccount, error) {
	participant, err := s.userRepo.GetByExternalID(ctx, req.ExternalUserID)
	if err == nil {
		return participant, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("[RegistrationsService.Register] Failed to fetch participant %q: %v", req.ExternalUserID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.UserAccount{
		ExternalID: req.ExternalUserID,
		Role:       domain.RoleParticipant,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		s.logger.Error("[RegistrationsService.Register] Failed to create participant %q: %v", req.ExternalUserID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("[RegistrationsService.Register] Participant created: %s (external %q)", created.ID, created.ExternalID)

	return created, nil
}

// statusForCourse определяет статус новой регистрации по свободным местам.
// Отменённые регистрации место не занимают
func (s *Service) statusForCourse(ctx context.Context, course *domain.Course) (domain.RegistrationStatus, error) {
	existing, err := s.registrationRepo.GetByCourse(ctx, course.ID)
	if err != nil {
		s.logger.Error("[RegistrationsService.Register] Failed to count registrations for course %s: %v", course.ID, err)
		return "", fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	taken := 0
	for _, reg := range existing {
		if reg.Status == domain.RegistrationRegistered {
			taken++
		}
	}

	if taken >= course.MaxParticipants {
		return domain.RegistrationWaitlisted, nil
	}
	return domain.RegistrationRegistered, nil
}
