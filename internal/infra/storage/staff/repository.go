package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avetra/venue-booking-service/internal/domain"
	"github.com/avetra/venue-booking-service/pkg/dbmetrics"
	"github.com/avetra/venue-booking-service/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"role_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками и ролями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает сотрудника по email (для аутентификации)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_users").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanStaffRow(executor.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanStaffRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает список всех сотрудников
func (r *Repository) List(ctx context.Context) ([]*domain.StaffUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_users").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.StaffUser, 0)
	for rows.Next() {
		var user domain.StaffUser
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.RoleID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		user.CreatedAt = createdAt.Time
		user.UpdatedAt = updatedAt.Time

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_users").
		Columns("name", "email", "password_hash", "role_id").
		Values(user.Name, user.Email, user.PasswordHash, user.RoleID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}

// GetRoleByID получает роль по ID
func (r *Repository) GetRoleByID(ctx context.Context, id int64) (*domain.Role, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "is_admin", "pages", "created_at", "updated_at").
		From("roles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoleByID - build select query: %v", ErrBuildQuery, err)
	}

	var role domain.Role
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&role.ID,
		&role.Name,
		&role.IsAdmin,
		pq.Array(&role.Pages),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoleByID - scan role: %v", ErrScanRow, err)
	}

	role.CreatedAt = createdAt.Time
	role.UpdatedAt = updatedAt.Time

	return &role, nil
}

// ListRoles получает список всех ролей
func (r *Repository) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "is_admin", "pages", "created_at", "updated_at").
		From("roles").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRoles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoles - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roles := make([]*domain.Role, 0)
	for rows.Next() {
		var role domain.Role
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&role.ID,
			&role.Name,
			&role.IsAdmin,
			pq.Array(&role.Pages),
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListRoles - scan row: %v", ErrScanRow, err)
		}

		role.CreatedAt = createdAt.Time
		role.UpdatedAt = updatedAt.Time

		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRoles - rows error: %v", ErrScanRow, err)
	}

	return roles, nil
}

// scanStaffRow сканирует одну строку staff_users
func (r *Repository) scanStaffRow(row *sql.Row, method string) (*domain.StaffUser, error) {
	var user domain.StaffUser
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan staff user: %v", ErrScanRow, method, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}
