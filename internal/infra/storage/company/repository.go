package company

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/dbmetrics"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с единственной записью компании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компании
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSingle получает единственную запись компании вместе с часами работы
// Если записи нет, возвращает ErrCompanyNotFound
func (r *Repository) GetSingle(ctx context.Context) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"contact_email",
		"contact_phone",
		"registration_date",
		"street",
		"house_number",
		"postal_code",
		"city",
		"created_at",
		"updated_at",
	).
		From("companies").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSingle - build select query: %v", ErrBuildQuery, err)
	}

	var company domain.Company
	var registrationDate, createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&company.ID,
		&company.Name,
		&company.ContactEmail,
		&company.ContactPhone,
		&registrationDate,
		&company.Address.Street,
		&company.Address.Number,
		&company.Address.PostalCode,
		&company.Address.City,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSingle - scan company: %v", ErrScanRow, err)
	}

	company.RegistrationDate = registrationDate.Time
	company.CreatedAt = createdAt.Time
	company.UpdatedAt = updatedAt.Time

	openingTimes, err := r.getOpeningTimes(ctx, executor, company.ID)
	if err != nil {
		return nil, err
	}
	company.OpeningTimes = openingTimes

	return &company, nil
}

// Save сохраняет запись компании
// Создает запись при первом сохранении, иначе обновляет существующую;
// часы работы заменяются целиком
func (r *Repository) Save(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.GetSingle(ctx)
	if err != nil && err != ErrCompanyNotFound {
		return nil, err
	}

	if existing == nil {
		if err := r.insert(ctx, executor, company); err != nil {
			return nil, err
		}
	} else {
		company.ID = existing.ID
		if err := r.update(ctx, executor, company); err != nil {
			return nil, err
		}
	}

	if err := r.replaceOpeningTimes(ctx, executor, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (r *Repository) insert(ctx context.Context, executor DBExecutor, company *domain.Company) error {
	query, args, err := psqlbuilder.Insert("companies").
		Columns(
			"name",
			"contact_email",
			"contact_phone",
			"registration_date",
			"street",
			"house_number",
			"postal_code",
			"city",
		).
		Values(
			company.Name,
			company.ContactEmail,
			company.ContactPhone,
			company.RegistrationDate,
			company.Address.Street,
			company.Address.Number,
			company.Address.PostalCode,
			company.Address.City,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&company.ID, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	company.CreatedAt = createdAt.Time
	company.UpdatedAt = updatedAt.Time
	return nil
}

func (r *Repository) update(ctx context.Context, executor DBExecutor, company *domain.Company) error {
	query, args, err := psqlbuilder.Update("companies").
		Set("name", company.Name).
		Set("contact_email", company.ContactEmail).
		Set("contact_phone", company.ContactPhone).
		Set("registration_date", company.RegistrationDate).
		Set("street", company.Address.Street).
		Set("house_number", company.Address.Number).
		Set("postal_code", company.Address.PostalCode).
		Set("city", company.Address.City).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": company.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) replaceOpeningTimes(ctx context.Context, executor DBExecutor, company *domain.Company) error {
	query, args, err := psqlbuilder.Delete("company_opening_times").
		Where(squirrel.Eq{"company_id": company.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build delete opening times query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - delete opening times: %v", ErrExecQuery, err)
	}

	if len(company.OpeningTimes) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("company_opening_times").
		Columns("company_id", "weekday", "start_time", "end_time")

	for _, ot := range company.OpeningTimes {
		insertBuilder = insertBuilder.Values(company.ID, ot.Weekday, ot.Start, ot.End)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert opening times query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - insert opening times: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getOpeningTimes(ctx context.Context, executor DBExecutor, companyID uuid.UUID) ([]domain.OpeningTime, error) {
	query, args, err := psqlbuilder.Select("weekday", "start_time", "end_time").
		From("company_opening_times").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOpeningTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOpeningTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	openingTimes := make([]domain.OpeningTime, 0)
	for rows.Next() {
		var ot domain.OpeningTime
		if err := rows.Scan(&ot.Weekday, &ot.Start, &ot.End); err != nil {
			return nil, fmt.Errorf("%w: getOpeningTimes - scan row: %v", ErrScanRow, err)
		}
		openingTimes = append(openingTimes, ot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getOpeningTimes - rows error: %v", ErrScanRow, err)
	}

	return openingTimes, nil
}
