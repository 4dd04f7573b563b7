package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avetra/venue-booking-service/internal/domain"
	"github.com/avetra/venue-booking-service/pkg/dbmetrics"
	"github.com/avetra/venue-booking-service/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"name",
	"capacity",
	"square_footage",
	"location",
	"description",
	"total_amount",
	"deposit_amount",
	"full_day_amount",
	"half_day_amount",
	"state",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venues").
		Columns(
			"name",
			"capacity",
			"square_footage",
			"location",
			"description",
			"total_amount",
			"deposit_amount",
			"full_day_amount",
			"half_day_amount",
			"state",
		).
		Values(
			venue.Name,
			venue.Capacity,
			venue.SquareFootage,
			venue.Location,
			venue.Description,
			venue.TotalAmount,
			venue.DepositAmount,
			venue.FullDayAmount,
			venue.HalfDayAmount,
			venue.State,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&venue.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return venue, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Capacity,
		&venue.SquareFootage,
		&venue.Location,
		&venue.Description,
		&venue.TotalAmount,
		&venue.DepositAmount,
		&venue.FullDayAmount,
		&venue.HalfDayAmount,
		&venue.State,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}

// List получает список всех площадок
func (r *Repository) List(ctx context.Context) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
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

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var venue domain.Venue
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Capacity,
			&venue.SquareFootage,
			&venue.Location,
			&venue.Description,
			&venue.TotalAmount,
			&venue.DepositAmount,
			&venue.FullDayAmount,
			&venue.HalfDayAmount,
			&venue.State,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		venue.CreatedAt = createdAt.Time
		venue.UpdatedAt = updatedAt.Time

		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// Update обновляет данные площадки
func (r *Repository) Update(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("venues").
		Set("name", venue.Name).
		Set("capacity", venue.Capacity).
		Set("square_footage", venue.SquareFootage).
		Set("location", venue.Location).
		Set("description", venue.Description).
		Set("total_amount", venue.TotalAmount).
		Set("deposit_amount", venue.DepositAmount).
		Set("full_day_amount", venue.FullDayAmount).
		Set("half_day_amount", venue.HalfDayAmount).
		Set("state", venue.State).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": venue.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	venue.UpdatedAt = updatedAt.Time

	return venue, nil
}

// Delete удаляет площадку (физическое удаление, использовать осторожно)
// История бронирований площадки при этом теряет ссылочную целостность,
// поэтому в админке удаление доступно только при отсутствии бронирований
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venues").
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
		return ErrVenueNotFound
	}

	return nil
}
