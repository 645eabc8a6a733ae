package user

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

// Repository репозиторий для работы с учетными записями пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую учетную запись
func (r *Repository) Create(ctx context.Context, account *domain.UserAccount) (*domain.UserAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("external_id", "role", "first_name", "last_name", "email", "phone").
		Values(account.ExternalID, account.Role, account.FirstName, account.LastName, account.Email, account.Phone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&account.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time
	return account, nil
}

// GetByID получает учетную запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserAccount, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByExternalID получает учетную запись по идентификатору во внешнем
// каталоге пользователей
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.UserAccount, error) {
	return r.getOne(ctx, squirrel.Eq{"external_id": externalID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.UserAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "external_id", "role", "first_name", "last_name", "email", "phone",
		"created_at", "updated_at",
	).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.UserAccount
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.ExternalID,
		&account.Role,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.Phone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %v", ErrScanRow, err)
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time
	return &account, nil
}
