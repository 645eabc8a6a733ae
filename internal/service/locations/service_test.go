package locations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	locationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/location"
	"github.com/skillhub/SkillHub-SchedulingService/internal/service/locations/models"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/ptr"
)

// fakeLocationRepo реализует LocationRepository для тестов
type fakeLocationRepo struct {
	byID      map[uuid.UUID]*domain.Location
	createErr error
	deleted   []uuid.UUID
}

func newFakeLocationRepo(locations ...*domain.Location) *fakeLocationRepo {
	f := &fakeLocationRepo{byID: make(map[uuid.UUID]*domain.Location)}
	for _, l := range locations {
		f.byID[l.ID] = l
	}
	return f
}

func (f *fakeLocationRepo) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	location.ID = uuid.New()
	f.byID[location.ID] = location
	return location, nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	if l, ok := f.byID[id]; ok {
		return l, nil
	}
	return nil, locationRepo.ErrLocationNotFound
}

func (f *fakeLocationRepo) GetAll(ctx context.Context) ([]*domain.Location, error) {
	all := make([]*domain.Location, 0, len(f.byID))
	for _, l := range f.byID {
		all = append(all, l)
	}
	return all, nil
}

func (f *fakeLocationRepo) Update(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	if _, ok := f.byID[location.ID]; !ok {
		return nil, locationRepo.ErrLocationNotFound
	}
	f.byID[location.ID] = location
	return location, nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return locationRepo.ErrLocationNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeAvailabilityRepo реализует AvailabilityRepository для тестов
type fakeAvailabilityRepo struct {
	byLocation map[uuid.UUID][]*domain.Availability
}

func (f *fakeAvailabilityRepo) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Availability, error) {
	return f.byLocation[locationID], nil
}

// fakeCourseDeleter запоминает удаленные курсы
type fakeCourseDeleter struct {
	deleted []uuid.UUID
	err     error
}

func (f *fakeCourseDeleter) Delete(ctx context.Context, courseID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, courseID)
	return nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testLocation() *domain.Location {
	return &domain.Location{
		ID:       uuid.New(),
		Name:     "Main hall",
		Capacity: 30,
		Status:   domain.LocationStatus{Active: true},
	}
}

func TestService_Save(t *testing.T) {
	t.Run("empty id creates new location", func(t *testing.T) {
		repo := newFakeLocationRepo()
		svc := New(repo, &fakeAvailabilityRepo{}, &fakeCourseDeleter{}, fakeTxManager{}, nopLogger{})

		resp, err := svc.Save(context.Background(), &models.SaveLocationRequest{
			Name:     "Studio B",
			Capacity: 12,
			Active:   true,
			Equipment: []models.EquipmentData{
				{Name: "Projector", Amount: 1},
			},
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "Studio B", resp.Name)
		require.Len(t, resp.Equipment, 1)
	})

	t.Run("unknown id yields ErrLocationNotFound", func(t *testing.T) {
		repo := newFakeLocationRepo()
		svc := New(repo, &fakeAvailabilityRepo{}, &fakeCourseDeleter{}, fakeTxManager{}, nopLogger{})

		_, err := svc.Save(context.Background(), &models.SaveLocationRequest{
			ID:       ptr.Ptr(uuid.New()),
			Name:     "Studio B",
			Capacity: 12,
		})

		require.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("invalid input rejected before repository", func(t *testing.T) {
		tests := []struct {
			name string
			req  *models.SaveLocationRequest
		}{
			{"empty name", &models.SaveLocationRequest{Capacity: 10}},
			{"negative capacity", &models.SaveLocationRequest{Name: "X", Capacity: -1}},
			{"empty equipment name", &models.SaveLocationRequest{
				Name: "X", Capacity: 1, Equipment: []models.EquipmentData{{Amount: 1}},
			}},
		}

		svc := New(newFakeLocationRepo(), &fakeAvailabilityRepo{}, &fakeCourseDeleter{}, fakeTxManager{}, nopLogger{})
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Save(context.Background(), tt.req)
				require.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes booking courses before the location", func(t *testing.T) {
		location := testLocation()
		courseA := uuid.New()
		courseB := uuid.New()

		repo := newFakeLocationRepo(location)
		availability := &fakeAvailabilityRepo{byLocation: map[uuid.UUID][]*domain.Availability{
			// Курс A занимает два слота - удаляется один раз
			location.ID: {
				{CourseID: courseA, LocationID: location.ID, Weekday: domain.Monday},
				{CourseID: courseA, LocationID: location.ID, Weekday: domain.Wednesday},
				{CourseID: courseB, LocationID: location.ID, Weekday: domain.Friday},
			},
		}}
		deleter := &fakeCourseDeleter{}

		svc := New(repo, availability, deleter, fakeTxManager{}, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), location.ID))
		assert.Equal(t, []uuid.UUID{courseA, courseB}, deleter.deleted)
		assert.Equal(t, []uuid.UUID{location.ID}, repo.deleted)
	})

	t.Run("unknown location yields ErrLocationNotFound", func(t *testing.T) {
		svc := New(newFakeLocationRepo(), &fakeAvailabilityRepo{}, &fakeCourseDeleter{}, fakeTxManager{}, nopLogger{})

		err := svc.Delete(context.Background(), uuid.New())

		require.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("course deletion failure aborts and keeps location", func(t *testing.T) {
		location := testLocation()
		repo := newFakeLocationRepo(location)
		availability := &fakeAvailabilityRepo{byLocation: map[uuid.UUID][]*domain.Availability{
			location.ID: {{CourseID: uuid.New(), LocationID: location.ID, Weekday: domain.Monday}},
		}}
		deleter := &fakeCourseDeleter{err: errors.New("deadlock")}

		svc := New(repo, availability, deleter, fakeTxManager{}, nopLogger{})

		err := svc.Delete(context.Background(), location.ID)

		require.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, repo.deleted)
	})
}
