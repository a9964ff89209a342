package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
)

const laborRateColumns = `id, name, category, unit, base_rate, location, description, created_at, updated_at`

type LaborRateSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ILaborRateRepository = (*LaborRateSQLiteRepository)(nil)

func NewLaborRateSQLiteRepository(db *sql.DB) *LaborRateSQLiteRepository {
	return &LaborRateSQLiteRepository{db: db}
}

func (r *LaborRateSQLiteRepository) List(ctx context.Context, filter interfaces.LaborRateFilter) ([]entities.LaborRate, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Location != "" {
		conds = append(conds, "location = ?")
		args = append(args, filter.Location)
	}

	query := `SELECT ` + laborRateColumns + ` FROM labor_rates`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list labor rates: %w", err)
	}
	defer rows.Close()

	out := make([]entities.LaborRate, 0)
	for rows.Next() {
		l, err := scanLaborRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LaborRateSQLiteRepository) GetByID(ctx context.Context, id string) (entities.LaborRate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+laborRateColumns+` FROM labor_rates WHERE id = ?`, id)
	l, err := scanLaborRate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.LaborRate{}, nil
	}
	return l, err
}

func (r *LaborRateSQLiteRepository) Create(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO labor_rates (`+laborRateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, l.ID, l.Name, l.Category, l.Unit, l.BaseRate, l.Location, l.Description, formatTime(l.CreatedAt), formatTime(l.UpdatedAt))
	if err != nil {
		return entities.LaborRate{}, fmt.Errorf("insert labor rate: %w", err)
	}
	return l, nil
}

func (r *LaborRateSQLiteRepository) Update(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE labor_rates
		SET name = ?, category = ?, unit = ?, base_rate = ?, location = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, l.Name, l.Category, l.Unit, l.BaseRate, l.Location, l.Description, formatTime(l.UpdatedAt), l.ID)
	if err != nil {
		return entities.LaborRate{}, fmt.Errorf("update labor rate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.LaborRate{}, nil
	}
	return r.GetByID(ctx, l.ID)
}

func (r *LaborRateSQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM labor_rates WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete labor rate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanLaborRate(s rowScanner) (entities.LaborRate, error) {
	var (
		l                    entities.LaborRate
		createdAt, updatedAt string
	)
	if err := s.Scan(&l.ID, &l.Name, &l.Category, &l.Unit, &l.BaseRate, &l.Location, &l.Description, &createdAt, &updatedAt); err != nil {
		return entities.LaborRate{}, err
	}
	l.CreatedAt = parseTime(createdAt)
	l.UpdatedAt = parseTime(updatedAt)
	return l, nil
}
