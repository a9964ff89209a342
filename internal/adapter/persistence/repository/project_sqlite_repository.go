package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
)

const (
	projectColumns = `id, project_name, project_type, total_area, estimated_duration, location,
	requirements, status, created_at, updated_at`
	costAnalysisColumns = `id, project_id, material_cost, labor_cost, transportation_cost, overhead_cost,
	total_cost, cost_per_sqft, created_at, updated_at`
)

// ProjectSQLiteRepository persists projects and their cost analysis.
//
// Storage model:
//   - projects: one row per project
//   - cost_analysis: at most one row per project (UNIQUE project_id)
type ProjectSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IProjectRepository = (*ProjectSQLiteRepository)(nil)

func NewProjectSQLiteRepository(db *sql.DB) *ProjectSQLiteRepository {
	return &ProjectSQLiteRepository{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *ProjectSQLiteRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := insertProject(ctx, r.db, p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

// CreateWithCostAnalysis inserts the project and its analysis in a single
// transaction; neither row is visible if either insert fails.
func (r *ProjectSQLiteRepository) CreateWithCostAnalysis(
	ctx context.Context,
	p entities.Project,
	ca entities.CostAnalysis,
) (entities.Project, entities.CostAnalysis, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Project{}, entities.CostAnalysis{}, fmt.Errorf("begin project transaction: %w", err)
	}

	if err := insertProject(ctx, tx, p); err != nil {
		_ = tx.Rollback()
		return entities.Project{}, entities.CostAnalysis{}, err
	}
	ca.ProjectID = p.ID
	if err := insertCostAnalysis(ctx, tx, ca); err != nil {
		_ = tx.Rollback()
		return entities.Project{}, entities.CostAnalysis{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Project{}, entities.CostAnalysis{}, fmt.Errorf("commit project transaction: %w", err)
	}
	return p, ca, nil
}

func (r *ProjectSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Project{}, nil
	}
	return p, err
}

// List returns every project, newest first, with its analysis when present.
func (r *ProjectSQLiteRepository) List(ctx context.Context) ([]entities.ProjectWithAnalysis, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.project_name, p.project_type, p.total_area, p.estimated_duration, p.location,
		       p.requirements, p.status, p.created_at, p.updated_at,
		       c.id, c.material_cost, c.labor_cost, c.transportation_cost, c.overhead_cost,
		       c.total_cost, c.cost_per_sqft, c.created_at, c.updated_at
		FROM projects p
		LEFT JOIN cost_analysis c ON c.project_id = p.id
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]entities.ProjectWithAnalysis, 0)
	for rows.Next() {
		var (
			p                     entities.Project
			pType, pStatus        string
			pCreated, pUpdated    string
			caID                  sql.NullString
			mat, lab, tr, ov, tot sql.NullFloat64
			perSqft               sql.NullFloat64
			caCreated, caUpdated  sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.ProjectName, &pType, &p.TotalArea, &p.EstimatedDuration, &p.Location,
			&p.Requirements, &pStatus, &pCreated, &pUpdated,
			&caID, &mat, &lab, &tr, &ov, &tot, &perSqft, &caCreated, &caUpdated,
		); err != nil {
			return nil, err
		}
		p.ProjectType = entities.ProjectType(pType)
		p.Status = entities.ProjectStatus(pStatus)
		p.CreatedAt = parseTime(pCreated)
		p.UpdatedAt = parseTime(pUpdated)

		item := entities.ProjectWithAnalysis{Project: p}
		if caID.Valid {
			item.CostAnalysis = &entities.CostAnalysis{
				ID:                 caID.String,
				ProjectID:          p.ID,
				MaterialCost:       mat.Float64,
				LaborCost:          lab.Float64,
				TransportationCost: tr.Float64,
				OverheadCost:       ov.Float64,
				TotalCost:          tot.Float64,
				CostPerSqft:        perSqft.Float64,
				CreatedAt:          parseTime(caCreated.String),
				UpdatedAt:          parseTime(caUpdated.String),
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ProjectSQLiteRepository) GetCostAnalysisByProjectID(ctx context.Context, projectID string) (entities.CostAnalysis, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+costAnalysisColumns+` FROM cost_analysis WHERE project_id = ?`, projectID)

	var (
		ca                   entities.CostAnalysis
		createdAt, updatedAt string
	)
	err := row.Scan(&ca.ID, &ca.ProjectID, &ca.MaterialCost, &ca.LaborCost, &ca.TransportationCost,
		&ca.OverheadCost, &ca.TotalCost, &ca.CostPerSqft, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CostAnalysis{}, nil
	}
	if err != nil {
		return entities.CostAnalysis{}, err
	}
	ca.CreatedAt = parseTime(createdAt)
	ca.UpdatedAt = parseTime(updatedAt)
	return ca, nil
}

func insertProject(ctx context.Context, db execer, p entities.Project) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.ProjectName, string(p.ProjectType), p.TotalArea, p.EstimatedDuration, p.Location,
		p.Requirements, string(p.Status), formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func insertCostAnalysis(ctx context.Context, db execer, ca entities.CostAnalysis) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO cost_analysis (`+costAnalysisColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ca.ID, ca.ProjectID, ca.MaterialCost, ca.LaborCost, ca.TransportationCost, ca.OverheadCost,
		ca.TotalCost, ca.CostPerSqft, formatTime(ca.CreatedAt), formatTime(ca.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert cost analysis: %w", err)
	}
	return nil
}

func scanProject(s rowScanner) (entities.Project, error) {
	var (
		p                    entities.Project
		pType, status        string
		createdAt, updatedAt string
	)
	if err := s.Scan(&p.ID, &p.ProjectName, &pType, &p.TotalArea, &p.EstimatedDuration, &p.Location,
		&p.Requirements, &status, &createdAt, &updatedAt); err != nil {
		return entities.Project{}, err
	}
	p.ProjectType = entities.ProjectType(pType)
	p.Status = entities.ProjectStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
