package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/dbmetrics"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с еженедельными бронированиями курсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindForLocationAndWeekday получает бронирования локации на день недели,
// чей курс активен в запрошенном диапазоне дат
// Стандартный тест пересечения интервалов: course.start_date <= queryEnd
// AND course.end_date >= queryStart, граничные даты считаются пересечением
func (r *Repository) FindForLocationAndWeekday(
	ctx context.Context,
	locationID uuid.UUID,
	weekday domain.WeekDay,
	queryStart time.Time,
	queryEnd time.Time,
) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.course_id",
		"a.location_id",
		"a.trainer_id",
		"a.weekday",
		"a.start_time",
		"a.end_time",
	).
		From("availabilities a").
		Join("courses c ON c.id = a.course_id").
		Where(squirrel.Eq{"a.location_id": locationID}).
		Where(squirrel.Eq{"a.weekday": weekday}).
		Where(squirrel.LtOrEq{"c.start_date": queryEnd}).
		Where(squirrel.GtOrEq{"c.end_date": queryStart}).
		OrderBy("a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindForLocationAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAvailabilities(ctx, executor, query, args)
}

// FindByLocation получает все бронирования локации независимо от дат курсов
func (r *Repository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "course_id", "location_id", "trainer_id", "weekday", "start_time", "end_time",
	).
		From("availabilities").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByLocation - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAvailabilities(ctx, executor, query, args)
}

// FindByCourse получает бронирования курса
func (r *Repository) FindByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "course_id", "location_id", "trainer_id", "weekday", "start_time", "end_time",
	).
		From("availabilities").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByCourse - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAvailabilities(ctx, executor, query, args)
}

// ReplaceForCourse заменяет еженедельное расписание курса целиком
// Вызывается внутри транзакции сохранения курса
func (r *Repository) ReplaceForCourse(ctx context.Context, courseID uuid.UUID, availabilities []domain.Availability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.deleteByCourse(ctx, executor, courseID); err != nil {
		return err
	}

	if len(availabilities) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availabilities").
		Columns("course_id", "location_id", "trainer_id", "weekday", "start_time", "end_time")

	for _, a := range availabilities {
		insertBuilder = insertBuilder.Values(courseID, a.LocationID, a.TrainerID, a.Weekday, a.Start, a.End)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForCourse - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForCourse - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByCourse удаляет все бронирования курса
func (r *Repository) DeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	return r.deleteByCourse(ctx, executor, courseID)
}

func (r *Repository) deleteByCourse(ctx context.Context, executor DBExecutor, courseID uuid.UUID) error {
	query, args, err := psqlbuilder.Delete("availabilities").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByCourse - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByCourse - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) queryAvailabilities(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Availability, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryAvailabilities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	availabilities := make([]*domain.Availability, 0)
	for rows.Next() {
		var a domain.Availability
		err := rows.Scan(
			&a.ID,
			&a.CourseID,
			&a.LocationID,
			&a.TrainerID,
			&a.Weekday,
			&a.Start,
			&a.End,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: queryAvailabilities - scan row: %v", ErrScanRow, err)
		}
		availabilities = append(availabilities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: queryAvailabilities - rows error: %v", ErrScanRow, err)
	}

	return availabilities, nil
}
