package availability

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

func mustTimeOfDay(t *testing.T, value string) types.TimeOfDay {
	t.Helper()
	tod, err := types.ParseTimeOfDay(value)
	require.NoError(t, err)
	return tod
}

func TestRepository_FindForLocationAndWeekday(t *testing.T) {
	ctx := context.Background()
	locationID := uuid.New()
	courseID := uuid.New()
	trainerID := uuid.New()

	queryStart := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	queryEnd := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	selectPattern := `SELECT a\.id, a\.course_id, a\.location_id, a\.trainer_id, a\.weekday, a\.start_time, a\.end_time FROM availabilities a JOIN courses c ON c\.id = a\.course_id WHERE a\.location_id = \$1 AND a\.weekday = \$2 AND c\.start_date <= \$3 AND c\.end_date >= \$4 ORDER BY a\.start_time ASC`

	t.Run("joins courses and filters by date range overlap", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectPattern).
			WithArgs(locationID, "monday", queryEnd, queryStart).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "course_id", "location_id", "trainer_id", "weekday", "start_time", "end_time"},
			).AddRow(uuid.New().String(), courseID.String(), locationID.String(), trainerID.String(), "monday", "09:00:00", "10:30:00"))

		repo := NewRepository(db)

		bookings, err := repo.FindForLocationAndWeekday(ctx, locationID, domain.Monday, queryStart, queryEnd)

		require.NoError(t, err)
		require.Len(t, bookings, 1)
		require.Equal(t, courseID, bookings[0].CourseID)
		require.Equal(t, domain.Monday, bookings[0].Weekday)
		require.Equal(t, "09:00", bookings[0].Start.String())
		require.Equal(t, "10:30", bookings[0].End.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no bookings yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectPattern).
			WithArgs(locationID, "sunday", queryEnd, queryStart).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "course_id", "location_id", "trainer_id", "weekday", "start_time", "end_time"},
			))

		repo := NewRepository(db)

		bookings, err := repo.FindForLocationAndWeekday(ctx, locationID, domain.Sunday, queryStart, queryEnd)

		require.NoError(t, err)
		require.Empty(t, bookings)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error wrapped as ErrExecQuery", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectPattern).
			WithArgs(locationID, "monday", queryEnd, queryStart).
			WillReturnError(sqlmock.ErrCancelled)

		repo := NewRepository(db)

		_, err = repo.FindForLocationAndWeekday(ctx, locationID, domain.Monday, queryStart, queryEnd)

		require.ErrorIs(t, err, ErrExecQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ReplaceForCourse(t *testing.T) {
	ctx := context.Background()
	courseID := uuid.New()
	locationID := uuid.New()
	trainerID := uuid.New()

	t.Run("deletes old schedule then inserts new one", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM availabilities WHERE course_id = \$1`).
			WithArgs(courseID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO availabilities`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewRepository(db)

		err = repo.ReplaceForCourse(ctx, courseID, []domain.Availability{
			{
				CourseID:   courseID,
				LocationID: locationID,
				TrainerID:  trainerID,
				Weekday:    domain.Monday,
				Start:      mustTimeOfDay(t, "09:00"),
				End:        mustTimeOfDay(t, "10:30"),
			},
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty schedule only clears old rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM availabilities WHERE course_id = \$1`).
			WithArgs(courseID).
			WillReturnResult(sqlmock.NewResult(0, 2))

		repo := NewRepository(db)

		require.NoError(t, repo.ReplaceForCourse(ctx, courseID, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
