package courses

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	courseRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/course"
	locationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/location"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/courses/models"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// fakeCourseRepo реализует CourseRepository для тестов
type fakeCourseRepo struct {
	byID    map[uuid.UUID]*domain.Course
	deleted []uuid.UUID
}

func newFakeCourseRepo(courses ...*domain.Course) *fakeCourseRepo {
	f := &fakeCourseRepo{byID: make(map[uuid.UUID]*domain.Course)}
	for _, c := range courses {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	course.ID = uuid.New()
	f.byID[course.ID] = course
	return course, nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, courseRepo.ErrCourseNotFound
}

func (f *fakeCourseRepo) GetAll(ctx context.Context) ([]*domain.Course, error) {
	all := make([]*domain.Course, 0, len(f.byID))
	for _, c := range f.byID {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeCourseRepo) GetNotEnded(ctx context.Context, ref time.Time) ([]*domain.Course, error) {
	remaining := make([]*domain.Course, 0, len(f.byID))
	for _, c := range f.byID {
		if !c.HasEnded(ref) {
			remaining = append(remaining, c)
		}
	}
	return remaining, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if _, ok := f.byID[course.ID]; !ok {
		return nil, courseRepo.ErrCourseNotFound
	}
	f.byID[course.ID] = course
	return course, nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return courseRepo.ErrCourseNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeAvailabilityRepo реализует AvailabilityRepository для тестов
type fakeAvailabilityRepo struct {
	byCourse map[uuid.UUID][]domain.Availability
	replaced int
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{byCourse: make(map[uuid.UUID][]domain.Availability)}
}

func (f *fakeAvailabilityRepo) FindByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Availability, error) {
	stored := f.byCourse[courseID]
	out := make([]*domain.Availability, 0, len(stored))
	for i := range stored {
		out = append(out, &stored[i])
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ReplaceForCourse(ctx context.Context, courseID uuid.UUID, availabilities []domain.Availability) error {
	f.byCourse[courseID] = availabilities
	f.replaced++
	return nil
}

func (f *fakeAvailabilityRepo) DeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	delete(f.byCourse, courseID)
	return nil
}

// fakeLocationRepo реализует LocationRepository для тестов
type fakeLocationRepo struct {
	byID map[uuid.UUID]*domain.Location
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	if l, ok := f.byID[id]; ok {
		return l, nil
	}
	return nil, locationRepo.ErrLocationNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeCourseRepo, *fakeAvailabilityRepo, *fakeLocationRepo) {
	courses := newFakeCourseRepo()
	availability := newFakeAvailabilityRepo()
	locations := &fakeLocationRepo{byID: make(map[uuid.UUID]*domain.Location)}
	svc := New(courses, availability, locations, fakeTxManager{}, nopLogger{})
	return svc, courses, availability, locations
}

func validSaveRequest(locationID uuid.UUID) *models.SaveCourseRequest {
	return &models.SaveCourseRequest{
		Title:           "Go basics",
		StartDate:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 12, 13, 0, 0, 0, 0, time.UTC),
		MaxParticipants: 12,
		Schedule: []models.ScheduleSlotData{
			{
				LocationID: locationID,
				TrainerID:  uuid.New(),
				Weekday:    "monday",
				Start:      types.NewTimeOfDay(9, 0),
				End:        types.NewTimeOfDay(10, 30),
			},
		},
	}
}

func TestService_Save(t *testing.T) {
	t.Run("creates course and replaces schedule", func(t *testing.T) {
		svc, _, availability, locations := newTestService()
		location := &domain.Location{ID: uuid.New(), Name: "Main hall", Capacity: 20}
		locations.byID[location.ID] = location

		resp, err := svc.Save(context.Background(), validSaveRequest(location.ID))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, 1, availability.replaced)
		require.Len(t, resp.Schedule, 1)
		assert.Equal(t, "monday", resp.Schedule[0].Weekday)
	})

	t.Run("unknown schedule location rejected", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.Save(context.Background(), validSaveRequest(uuid.New()))

		require.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("invalid input rejected before repository", func(t *testing.T) {
		svc, _, _, locations := newTestService()
		location := &domain.Location{ID: uuid.New(), Name: "Main hall", Capacity: 20}
		locations.byID[location.ID] = location

		tests := []struct {
			name   string
			mutate func(req *models.SaveCourseRequest)
		}{
			{"empty title", func(req *models.SaveCourseRequest) { req.Title = "" }},
			{"end before start", func(req *models.SaveCourseRequest) {
				req.EndDate = req.StartDate.AddDate(0, 0, -1)
			}},
			{"non-positive max participants", func(req *models.SaveCourseRequest) { req.MaxParticipants = 0 }},
			{"unknown weekday", func(req *models.SaveCourseRequest) { req.Schedule[0].Weekday = "someday" }},
			{"slot off grid", func(req *models.SaveCourseRequest) {
				req.Schedule[0].Start = types.NewTimeOfDay(9, 15)
			}},
			{"slot start not before end", func(req *models.SaveCourseRequest) {
				req.Schedule[0].Start = types.NewTimeOfDay(10, 30)
				req.Schedule[0].End = types.NewTimeOfDay(9, 0)
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validSaveRequest(location.ID)
				tt.mutate(req)

				_, err := svc.Save(context.Background(), req)

				require.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("removes schedule with the course", func(t *testing.T) {
		svc, courses, availability, _ := newTestService()
		course := &domain.Course{ID: uuid.New(), Title: "Go basics"}
		courses.byID[course.ID] = course
		availability.byCourse[course.ID] = []domain.Availability{{CourseID: course.ID, Weekday: domain.Monday}}

		require.NoError(t, svc.Delete(context.Background(), course.ID))
		assert.Equal(t, []uuid.UUID{course.ID}, courses.deleted)
		assert.Empty(t, availability.byCourse)
	})

	t.Run("unknown course yields ErrCourseNotFound", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		err := svc.Delete(context.Background(), uuid.New())

		require.ErrorIs(t, err, ErrCourseNotFound)
	})
}
