package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
)

const estimateColumns = `id, project_type, area, location, materials, labor, material_total, labor_total,
	subtotal, overhead, transportation, total_cost, created_at`

// EstimateSQLiteRepository stores estimate snapshots with their line items
// encoded as JSON columns.
type EstimateSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimateRepository = (*EstimateSQLiteRepository)(nil)

func NewEstimateSQLiteRepository(db *sql.DB) *EstimateSQLiteRepository {
	return &EstimateSQLiteRepository{db: db}
}

func (r *EstimateSQLiteRepository) Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
	materials, err := json.Marshal(nonNilMaterials(e.Materials))
	if err != nil {
		return entities.CostEstimate{}, fmt.Errorf("encode material lines: %w", err)
	}
	labor, err := json.Marshal(nonNilLabor(e.Labor))
	if err != nil {
		return entities.CostEstimate{}, fmt.Errorf("encode labor lines: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cost_estimates (`+estimateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, string(e.ProjectType), e.Area, e.Location, string(materials), string(labor),
		e.MaterialTotal, e.LaborTotal, e.Subtotal, e.Overhead, e.Transportation, e.TotalCost, formatTime(e.CreatedAt))
	if err != nil {
		return entities.CostEstimate{}, fmt.Errorf("insert cost estimate: %w", err)
	}
	return e, nil
}

func (r *EstimateSQLiteRepository) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+estimateColumns+` FROM cost_estimates WHERE id = ?`, id)
	e, err := scanEstimate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CostEstimate{}, nil
	}
	return e, err
}

func (r *EstimateSQLiteRepository) List(ctx context.Context, projectType entities.ProjectType) ([]entities.CostEstimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM cost_estimates`
	var args []any
	if projectType != "" {
		query += ` WHERE project_type = ?`
		args = append(args, string(projectType))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cost estimates: %w", err)
	}
	defer rows.Close()

	out := make([]entities.CostEstimate, 0)
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEstimate(s rowScanner) (entities.CostEstimate, error) {
	var (
		e                entities.CostEstimate
		projectType      string
		materials, labor string
		createdAt        string
	)
	if err := s.Scan(&e.ID, &projectType, &e.Area, &e.Location, &materials, &labor,
		&e.MaterialTotal, &e.LaborTotal, &e.Subtotal, &e.Overhead, &e.Transportation, &e.TotalCost, &createdAt); err != nil {
		return entities.CostEstimate{}, err
	}
	if err := json.Unmarshal([]byte(materials), &e.Materials); err != nil {
		return entities.CostEstimate{}, fmt.Errorf("decode material lines: %w", err)
	}
	if err := json.Unmarshal([]byte(labor), &e.Labor); err != nil {
		return entities.CostEstimate{}, fmt.Errorf("decode labor lines: %w", err)
	}
	e.ProjectType = entities.ProjectType(projectType)
	e.Materials = nonNilMaterials(e.Materials)
	e.Labor = nonNilLabor(e.Labor)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func nonNilMaterials(lines []entities.MaterialLine) []entities.MaterialLine {
	if lines == nil {
		return []entities.MaterialLine{}
	}
	return lines
}

func nonNilLabor(lines []entities.LaborLine) []entities.LaborLine {
	if lines == nil {
		return []entities.LaborLine{}
	}
	return lines
}
