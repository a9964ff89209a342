package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
)

const materialColumns = `id, name, category, unit, base_rate, description, created_at, updated_at`

// MaterialSQLiteRepository keeps the material catalog in the relational store.
type MaterialSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IMaterialRepository = (*MaterialSQLiteRepository)(nil)

func NewMaterialSQLiteRepository(db *sql.DB) *MaterialSQLiteRepository {
	return &MaterialSQLiteRepository{db: db}
}

func (r *MaterialSQLiteRepository) List(ctx context.Context, category string) ([]entities.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MaterialSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = ?`, id)
	m, err := scanMaterial(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Material{}, nil
	}
	return m, err
}

func (r *MaterialSQLiteRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO materials (`+materialColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Category, m.Unit, m.BaseRate, m.Description, formatTime(m.CreatedAt), formatTime(m.UpdatedAt))
	if err != nil {
		return entities.Material{}, fmt.Errorf("insert material: %w", err)
	}
	return m, nil
}

func (r *MaterialSQLiteRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE materials
		SET name = ?, category = ?, unit = ?, base_rate = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, m.Name, m.Category, m.Unit, m.BaseRate, m.Description, formatTime(m.UpdatedAt), m.ID)
	if err != nil {
		return entities.Material{}, fmt.Errorf("update material: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Material{}, nil
	}
	return r.GetByID(ctx, m.ID)
}

func (r *MaterialSQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete material: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(s rowScanner) (entities.Material, error) {
	var (
		m                    entities.Material
		createdAt, updatedAt string
	)
	if err := s.Scan(&m.ID, &m.Name, &m.Category, &m.Unit, &m.BaseRate, &m.Description, &createdAt, &updatedAt); err != nil {
		return entities.Material{}, err
	}
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return m, nil
}
