package location

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

// Repository репозиторий для работы с локациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую локацию вместе с её оборудованием
func (r *Repository) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("locations").
		Columns("name", "capacity", "active", "status_description").
		Values(location.Name, location.Capacity, location.Status.Active, location.Status.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&location.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	location.CreatedAt = createdAt.Time
	location.UpdatedAt = updatedAt.Time

	if err := r.replaceEquipment(ctx, executor, location); err != nil {
		return nil, err
	}

	return location, nil
}

// GetByID получает локацию по ID вместе с оборудованием
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "capacity", "active", "status_description", "created_at", "updated_at",
	).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	location, err := r.scanLocation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	equipment, err := r.getEquipment(ctx, executor, location.ID)
	if err != nil {
		return nil, err
	}
	location.Equipment = equipment

	return location, nil
}

// GetAll получает все локации, отсортированные по ID
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Location, error) {
	return r.getList(ctx, nil)
}

// FindActiveWithMinCapacity получает активные локации с вместимостью не
// меньше заданной, отсортированные по ID для детерминированного результата
func (r *Repository) FindActiveWithMinCapacity(ctx context.Context, minCapacity int) ([]*domain.Location, error) {
	return r.getList(ctx, squirrel.And{
		squirrel.Eq{"active": true},
		squirrel.GtOrEq{"capacity": minCapacity},
	})
}

// Update обновляет локацию и заменяет её оборудование
func (r *Repository) Update(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("locations").
		Set("name", location.Name).
		Set("capacity", location.Capacity).
		Set("active", location.Status.Active).
		Set("status_description", location.Status.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": location.ID}).
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
		return nil, ErrLocationNotFound
	}

	if err := r.replaceEquipment(ctx, executor, location); err != nil {
		return nil, err
	}

	return location, nil
}

// Delete удаляет локацию
// Оборудование удаляется каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("locations").
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
		return ErrLocationNotFound
	}

	return nil
}

func (r *Repository) getList(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "name", "capacity", "active", "status_description", "created_at", "updated_at",
	).
		From("locations").
		OrderBy("id ASC")

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

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		var location domain.Location
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Capacity,
			&location.Status.Active,
			&location.Status.Description,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getList - scan row: %v", ErrScanRow, err)
		}

		location.CreatedAt = createdAt.Time
		location.UpdatedAt = updatedAt.Time
		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getList - rows error: %v", ErrScanRow, err)
	}

	if len(locations) > 0 {
		ids := make([]uuid.UUID, 0, len(locations))
		for _, location := range locations {
			ids = append(ids, location.ID)
		}

		// оборудование подтягивается одним запросом для всего списка
		equipmentByLocation, err := r.getEquipmentForLocations(ctx, executor, ids)
		if err != nil {
			return nil, err
		}
		for _, location := range locations {
			location.Equipment = equipmentByLocation[location.ID]
		}
	}

	return locations, nil
}

func (r *Repository) scanLocation(row *sql.Row) (*domain.Location, error) {
	var location domain.Location
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Capacity,
		&location.Status.Active,
		&location.Status.Description,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanLocation - scan row: %v", ErrScanRow, err)
	}

	location.CreatedAt = createdAt.Time
	location.UpdatedAt = updatedAt.Time
	return &location, nil
}

func (r *Repository) replaceEquipment(ctx context.Context, executor DBExecutor, location *domain.Location) error {
	query, args, err := psqlbuilder.Delete("equipment").
		Where(squirrel.Eq{"location_id": location.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: replaceEquipment - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceEquipment - delete equipment: %v", ErrExecQuery, err)
	}

	if len(location.Equipment) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("equipment").
		Columns("location_id", "name", "description", "amount")

	for _, eq := range location.Equipment {
		insertBuilder = insertBuilder.Values(location.ID, eq.Name, eq.Description, eq.Amount)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceEquipment - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceEquipment - insert equipment: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getEquipment(ctx context.Context, executor DBExecutor, locationID uuid.UUID) ([]domain.Equipment, error) {
	query, args, err := psqlbuilder.Select("id", "location_id", "name", "description", "amount").
		From("equipment").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	equipment := make([]domain.Equipment, 0)
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.LocationID, &eq.Name, &eq.Description, &eq.Amount); err != nil {
			return nil, fmt.Errorf("%w: getEquipment - scan row: %v", ErrScanRow, err)
		}
		equipment = append(equipment, eq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getEquipment - rows error: %v", ErrScanRow, err)
	}

	return equipment, nil
}

func (r *Repository) getEquipmentForLocations(ctx context.Context, executor DBExecutor, locationIDs []uuid.UUID) (map[uuid.UUID][]domain.Equipment, error) {
	query, args, err := psqlbuilder.Select("id", "location_id", "name", "description", "amount").
		From("equipment").
		Where(squirrel.Eq{"location_id": locationIDs}).
		OrderBy("location_id ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getEquipmentForLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getEquipmentForLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	equipmentByLocation := make(map[uuid.UUID][]domain.Equipment, len(locationIDs))
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.LocationID, &eq.Name, &eq.Description, &eq.Amount); err != nil {
			return nil, fmt.Errorf("%w: getEquipmentForLocations - scan row: %v", ErrScanRow, err)
		}
		equipmentByLocation[eq.LocationID] = append(equipmentByLocation[eq.LocationID], eq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getEquipmentForLocations - rows error: %v", ErrScanRow, err)
	}

	return equipmentByLocation, nil
}
