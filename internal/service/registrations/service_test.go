package registrations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	courseRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/course"
	registrationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/registration"
	userRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/user"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations/models"
)

// fakeRegistrationRepo реализует RegistrationRepository для тестов
type fakeRegistrationRepo struct {
	byID     map[uuid.UUID]*domain.CourseRegistration
	byCourse map[uuid.UUID][]*domain.CourseRegistration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		byID:     make(map[uuid.UUID]*domain.CourseRegistration),
		byCourse: make(map[uuid.UUID][]*domain.CourseRegistration),
	}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error) {
	for _, existing := range f.byCourse[reg.CourseID] {
		if existing.ParticipantID == reg.ParticipantID {
			return nil, registrationRepo.ErrAlreadyRegistered
		}
	}
	reg.ID = uuid.New()
	f.byID[reg.ID] = reg
	f.byCourse[reg.CourseID] = append(f.byCourse[reg.CourseID], reg)
	return reg, nil
}

func (f *fakeRegistrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseRegistration, error) {
	if reg, ok := f.byID[id]; ok {
		return reg, nil
	}
	return nil, registrationRepo.ErrRegistrationNotFound
}

func (f *fakeRegistrationRepo) GetByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.CourseRegistration, error) {
	return f.byCourse[courseID], nil
}

func (f *fakeRegistrationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	reg, ok := f.byID[id]
	if !ok {
		return registrationRepo.ErrRegistrationNotFound
	}
	reg.Status = status
	return nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return registrationRepo.ErrRegistrationNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCourseRepo реализует CourseRepository для тестов
type fakeCourseRepo struct {
	byID map[uuid.UUID]*domain.Course
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, courseRepo.ErrCourseNotFound
}

// fakeUserRepo реализует UserRepository для тестов
type fakeUserRepo struct {
	byID         map[uuid.UUID]*domain.UserAccount
	byExternalID map[string]*domain.UserAccount
	created      int
}

func newFakeUserRepo(users ...*domain.UserAccount) *fakeUserRepo {
	f := &fakeUserRepo{
		byID:         make(map[uuid.UUID]*domain.UserAccount),
		byExternalID: make(map[string]*domain.UserAccount),
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byExternalID[u.ExternalID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, account *domain.UserAccount) (*domain.UserAccount, error) {
	account.ID = uuid.New()
	f.byID[account.ID] = account
	f.byExternalID[account.ExternalID] = account
	f.created++
	return account, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserAccount, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.UserAccount, error) {
	if u, ok := f.byExternalID[externalID]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct {
	serializableCalls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableCalls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCourse(maxParticipants int) *domain.Course {
	return &domain.Course{
		ID:              uuid.New(),
		Title:           "Go basics",
		StartDate:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 12, 13, 0, 0, 0, 0, time.UTC),
		MaxParticipants: maxParticipants,
	}
}

func newService(regs *fakeRegistrationRepo, courses *fakeCourseRepo, users *fakeUserRepo) (*Service, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	return New(regs, courses, users, txMgr, nopLogger{}), txMgr
}

func TestService_Register(t *testing.T) {
	t.Run("creates participant on first registration", func(t *testing.T) {
		course := testCourse(10)
		users := newFakeUserRepo()
		svc, txMgr := newService(newFakeRegistrationRepo(), &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{course.ID: course}}, users)

		resp, err := svc.Register(context.Background(), &models.RegisterRequest{
			CourseID:       course.ID,
			ExternalUserID: "ext-42",
			FirstName:      "Anna",
			LastName:       "Schmidt",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.RegistrationRegistered), resp.Status)
		assert.Equal(t, 1, users.created)
		assert.Equal(t, 1, txMgr.serializableCalls)
	})

	t.Run("known participant is reused", func(t *testing.T) {
		course := testCourse(10)
		participant := &domain.UserAccount{ID: uuid.New(), ExternalID: "ext-42", Role: domain.RoleParticipant}
		users := newFakeUserRepo(participant)
		svc, _ := newService(newFakeRegistrationRepo(), &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{course.ID: course}}, users)

		resp, err := svc.Register(context.Background(), &models.RegisterRequest{
			CourseID:       course.ID,
			ExternalUserID: "ext-42",
		})

		require.NoError(t, err)
		assert.Equal(t, participant.ID, resp.ParticipantID)
		assert.Equal(t, 0, users.created)
	})

	t.Run("full course puts registration on waitlist", func(t *testing.T) {
		course := testCourse(1)
		regs := newFakeRegistrationRepo()
		regs.byCourse[course.ID] = []*domain.CourseRegistration{
			{ID: uuid.New(), CourseID: course.ID, ParticipantID: uuid.New(), Status: domain.RegistrationRegistered},
		}
		svc, _ := newService(regs, &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{course.ID: course}}, newFakeUserRepo())

		resp, err := svc.Register(context.Background(), &models.RegisterRequest{
			CourseID:       course.ID,
			ExternalUserID: "ext-43",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.RegistrationWaitlisted), resp.Status)
	})

	t.Run("cancelled registrations free their place", func(t *testing.T) {
		course := testCourse(1)
		regs := newFakeRegistrationRepo()
		regs.byCourse[course.ID] = []*domain.CourseRegistration{
			{ID: uuid.New(), CourseID: course.ID, ParticipantID: uuid.New(), Status: domain.RegistrationCancelled},
		}
		svc, _ := newService(regs, &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{course.ID: course}}, newFakeUserRepo())

		resp, err := svc.Register(context.Background(), &models.RegisterRequest{
			CourseID:       course.ID,
			ExternalUserID: "ext-44",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.RegistrationRegistered), resp.Status)
	})

	t.Run("duplicate registration yields ErrAlreadyRegistered", func(t *testing.T) {
		course := testCourse(10)
		participant := &domain.UserAccount{ID: uuid.New(), ExternalID: "ext-42", Role: domain.RoleParticipant}
		regs := newFakeRegistrationRepo()
		regs.byCourse[course.ID] = []*domain.CourseRegistration{
			{ID: uuid.New(), CourseID: course.ID, ParticipantID: participant.ID, Status: domain.RegistrationRegistered},
		}
		svc, _ := newService(regs, &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{course.ID: course}}, newFakeUserRepo(participant))

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			CourseID:       course.ID,
			ExternalUserID: "ext-42",
		})

		require.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("unknown course yields ErrCourseNotFound", func(t *testing.T) {
		svc, _ := newService(newFakeRegistrationRepo(), &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{}}, newFakeUserRepo())

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			CourseID:       uuid.New(),
			ExternalUserID: "ext-42",
		})

		require.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestService_AssignStatus(t *testing.T) {
	course := testCourse(10)

	t.Run("moves registration to new status", func(t *testing.T) {
		regs := newFakeRegistrationRepo()
		reg := &domain.CourseRegistration{ID: uuid.New(), CourseID: course.ID, Status: domain.RegistrationWaitlisted}
		regs.byID[reg.ID] = reg

		svc, _ := newService(regs, &fakeCourseRepo{byID: map[uuid.UUID]*domain.Course{course.ID: course}}, newFakeUserRepo())

		resp, err := svc.AssignStatus(context.Background(), reg.ID, "registered")

		require.NoError(t, err)
		assert.Equal(t, string(domain.RegistrationRegistered), resp.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _ := newService(newFakeRegistrationRepo(), &fakeCourseRepo{}, newFakeUserRepo())

		_, err := svc.AssignStatus(context.Background(), uuid.New(), "suspended")

		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown registration yields ErrRegistrationNotFound", func(t *testing.T) {
		svc, _ := newService(newFakeRegistrationRepo(), &fakeCourseRepo{}, newFakeUserRepo())

		_, err := svc.AssignStatus(context.Background(), uuid.New(), "cancelled")

		require.ErrorIs(t, err, ErrRegistrationNotFound)
	})
}

func TestService_Unregister(t *testing.T) {
	t.Run("owner deletes own registration", func(t *testing.T) {
		participant := &domain.UserAccount{ID: uuid.New(), ExternalID: "ext-42", Role: domain.RoleParticipant}
		regs := newFakeRegistrationRepo()
		reg := &domain.CourseRegistration{ID: uuid.New(), CourseID: uuid.New(), ParticipantID: participant.ID}
		regs.byID[reg.ID] = reg

		svc, _ := newService(regs, &fakeCourseRepo{}, newFakeUserRepo(participant))

		require.NoError(t, svc.Unregister(context.Background(), reg.ID, "ext-42"))
		_, err := regs.GetByID(context.Background(), reg.ID)
		require.ErrorIs(t, err, registrationRepo.ErrRegistrationNotFound)
	})

	t.Run("foreign registration yields ErrForbidden", func(t *testing.T) {
		participant := &domain.UserAccount{ID: uuid.New(), ExternalID: "ext-42", Role: domain.RoleParticipant}
		regs := newFakeRegistrationRepo()
		reg := &domain.CourseRegistration{ID: uuid.New(), CourseID: uuid.New(), ParticipantID: participant.ID}
		regs.byID[reg.ID] = reg

		svc, _ := newService(regs, &fakeCourseRepo{}, newFakeUserRepo(participant))

		err := svc.Unregister(context.Background(), reg.ID, "ext-99")

		require.ErrorIs(t, err, ErrForbidden)

		// регистрация осталась на месте
		_, err = regs.GetByID(context.Background(), reg.ID)
		require.NoError(t, err)
	})

	t.Run("unknown registration yields ErrRegistrationNotFound", func(t *testing.T) {
		svc, _ := newService(newFakeRegistrationRepo(), &fakeCourseRepo{}, newFakeUserRepo())

		err := svc.Unregister(context.Background(), uuid.New(), "ext-42")

		require.ErrorIs(t, err, ErrRegistrationNotFound)
	})
}
