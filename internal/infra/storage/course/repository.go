package course

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/dbmetrics"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с курсами
// Еженедельные бронирования курса загружаются и сохраняются через
// availability.Repository; здесь только сама запись курса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория курсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый курс
func (r *Repository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courses").
		Columns("title", "description", "start_date", "end_date", "max_participants", "picture_urls").
		Values(
			course.Title,
			course.Description,
			course.StartDate,
			course.EndDate,
			course.MaxParticipants,
			pq.Array(course.PictureURLs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&course.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time
	return course, nil
}

// GetByID получает курс по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "title", "description", "start_date", "end_date",
		"max_participants", "picture_urls", "created_at", "updated_at",
	).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var course domain.Course
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.StartDate,
		&course.EndDate,
		&course.MaxParticipants,
		pq.Array(&course.PictureURLs),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %v", ErrScanRow, err)
	}

	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time
	return &course, nil
}

// GetAll получает все курсы, отсортированные по дате начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Course, error) {
	return r.getList(ctx, nil)
}

// GetNotEnded получает курсы, которые ещё не закончились к указанной дате
func (r *Repository) GetNotEnded(ctx context.Context, ref time.Time) ([]*domain.Course, error) {
	return r.getList(ctx, squirrel.GtOrEq{"end_date": ref})
}

// Update обновляет запись курса
func (r *Repository) Update(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("start_date", course.StartDate).
		Set("end_date", course.EndDate).
		Set("max_participants", course.MaxParticipants).
		Set("picture_urls", pq.Array(course.PictureURLs)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrCourseNotFound
	}

	return course, nil
}

// Delete удаляет курс
// Бронирования и регистрации удаляются каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func (r *Repository) getList(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "title", "description", "start_date", "end_date",
		"max_participants", "picture_urls", "created_at", "updated_at",
	).
		From("courses").
		OrderBy("start_date ASC, id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getList - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getList - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		var course domain.Course
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.StartDate,
			&course.EndDate,
			&course.MaxParticipants,
			pq.Array(&course.PictureURLs),
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getList - scan row: %v", ErrScanRow, err)
		}

		course.CreatedAt = createdAt.Time
		course.UpdatedAt = updatedAt.Time
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getList - rows error: %v", ErrScanRow, err)
	}

	return courses, nil
}
