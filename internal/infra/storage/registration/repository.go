package registration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/dbmetrics"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки unique_violation в PostgreSQL
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с регистрациями участников на курсы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория регистраций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую регистрацию
// Повторная регистрация того же участника на курс возвращает ErrAlreadyRegistered
func (r *Repository) Create(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("course_registrations").
		Columns("course_id", "participant_id", "registration_date", "status").
		Values(reg.CourseID, reg.ParticipantID, reg.RegistrationDate, reg.Status).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&reg.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return reg, nil
}

// GetByID получает регистрацию по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "course_id", "participant_id", "registration_date", "status",
	).
		From("course_registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reg domain.CourseRegistration
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reg.ID,
		&reg.CourseID,
		&reg.ParticipantID,
		&reg.RegistrationDate,
		&reg.Status,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan registration: %v", ErrScanRow, err)
	}

	return &reg, nil
}

// GetByCourse получает регистрации курса
func (r *Repository) GetByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.CourseRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "course_id", "participant_id", "registration_date", "status",
	).
		From("course_registrations").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("registration_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourse - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourse - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	registrations := make([]*domain.CourseRegistration, 0)
	for rows.Next() {
		var reg domain.CourseRegistration
		err := rows.Scan(&reg.ID, &reg.CourseID, &reg.ParticipantID, &reg.RegistrationDate, &reg.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCourse - scan row: %v", ErrScanRow, err)
		}
		registrations = append(registrations, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCourse - rows error: %v", ErrScanRow, err)
	}

	return registrations, nil
}

// UpdateStatus обновляет статус регистрации
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("course_registrations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

// Delete удаляет регистрацию
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("course_registrations").
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
		return ErrRegistrationNotFound
	}

	return nil
}
