package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/infrastructure/database"
	"brickonomics/internal/infrastructure/migrations"
	"brickonomics/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Up(db))
	return db
}

var base = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestMaterialSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMaterialSQLiteRepository(newTestDB(t))

	steel := entities.Material{ID: "m2", Name: "Steel", Category: "steel", Unit: "kg", BaseRate: 65, CreatedAt: base.Add(time.Second), UpdatedAt: base}
	cement := entities.Material{ID: "m1", Name: "Cement", Category: "cement", Unit: "bag", BaseRate: 350, Description: "OPC 53", CreatedAt: base, UpdatedAt: base}
	_, err := repo.Create(ctx, steel)
	require.NoError(t, err)
	_, err = repo.Create(ctx, cement)
	require.NoError(t, err)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "m1", all[0].ID, "oldest first")
	require.Equal(t, "OPC 53", all[0].Description)
	require.True(t, all[0].CreatedAt.Equal(base))

	filtered, err := repo.List(ctx, "steel")
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	none, err := repo.List(ctx, "glass")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	require.Empty(t, missing.ID)

	steel.BaseRate = 70
	steel.UpdatedAt = base.Add(time.Hour)
	updated, err := repo.Update(ctx, steel)
	require.NoError(t, err)
	require.Equal(t, 70.0, updated.BaseRate)
	require.True(t, updated.CreatedAt.Equal(base.Add(time.Second)))

	ghost, err := repo.Update(ctx, entities.Material{ID: "ghost", Name: "x", Category: "x", Unit: "x"})
	require.NoError(t, err)
	require.Empty(t, ghost.ID)

	deleted, err := repo.Delete(ctx, "m2")
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = repo.Delete(ctx, "m2")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestLaborRateSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLaborRateSQLiteRepository(newTestDB(t))

	rates := []entities.LaborRate{
		{ID: "l1", Name: "Mason", Category: "skilled", Unit: "day", BaseRate: 800, CreatedAt: base, UpdatedAt: base},
		{ID: "l2", Name: "Pune Mason", Category: "skilled", Unit: "day", BaseRate: 900, Location: "Pune", CreatedAt: base.Add(time.Minute), UpdatedAt: base},
		{ID: "l3", Name: "Helper", Category: "unskilled", Unit: "day", BaseRate: 500, CreatedAt: base.Add(2 * time.Minute), UpdatedAt: base},
	}
	for _, r := range rates {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	got, err := repo.List(ctx, interfaces.LaborRateFilter{Category: "skilled"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.List(ctx, interfaces.LaborRateFilter{Category: "skilled", Location: "Pune"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "l2", got[0].ID)

	l, err := repo.GetByID(ctx, "l3")
	require.NoError(t, err)
	require.Equal(t, "Helper", l.Name)

	l.Location = "Delhi"
	l.UpdatedAt = base.Add(time.Hour)
	l, err = repo.Update(ctx, l)
	require.NoError(t, err)
	require.Equal(t, "Delhi", l.Location)

	ok, err := repo.Delete(ctx, "l1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEstimateSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateSQLiteRepository(newTestDB(t))

	older := entities.CostEstimate{
		ID: "e1", ProjectType: entities.ProjectTypeResidential, Area: 100, Location: "Pune",
		Materials: []entities.MaterialLine{{Category: "cement", Name: "Cement", Quantity: 40, Unit: "bag", Rate: 350, Total: 14000}},
		Labor:     []entities.LaborLine{{Category: "skilled", Role: "Mason", Hours: 50, Rate: 800, Total: 40000}},
		MaterialTotal: 14000, LaborTotal: 40000, Subtotal: 54000, Overhead: 8100, Transportation: 5400, TotalCost: 67500,
		CreatedAt: base,
	}
	newer := entities.CostEstimate{ID: "e2", ProjectType: entities.ProjectTypeCommercial, Area: 10, CreatedAt: base.Add(time.Hour)}

	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, older.Materials, got.Materials)
	require.Equal(t, older.Labor, got.Labor)
	require.Equal(t, 67500.0, got.TotalCost)

	e2, err := repo.GetByID(ctx, "e2")
	require.NoError(t, err)
	require.NotNil(t, e2.Materials)
	require.Empty(t, e2.Materials)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "e2", all[0].ID, "newest first")

	residential, err := repo.List(ctx, entities.ProjectTypeResidential)
	require.NoError(t, err)
	require.Len(t, residential, 1)

	missing, err := repo.GetByID(ctx, "e9")
	require.NoError(t, err)
	require.Empty(t, missing.ID)
}

func TestProjectSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectSQLiteRepository(newTestDB(t))

	p1 := entities.Project{
		ID: "p1", ProjectName: "Tower", ProjectType: entities.ProjectTypeCommercial, TotalArea: 5000,
		EstimatedDuration: 365, Location: "Mumbai", Status: entities.ProjectStatusPending, CreatedAt: base, UpdatedAt: base,
	}
	_, err := repo.Create(ctx, p1)
	require.NoError(t, err)

	p2 := p1
	p2.ID, p2.ProjectName, p2.CreatedAt = "p2", "Villa", base.Add(time.Hour)
	ca := entities.CostAnalysis{ID: "c1", MaterialCost: 10, LaborCost: 20, TotalCost: 37.5, CostPerSqft: 0.01, CreatedAt: base, UpdatedAt: base}
	_, storedCA, err := repo.CreateWithCostAnalysis(ctx, p2, ca)
	require.NoError(t, err)
	require.Equal(t, "p2", storedCA.ProjectID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "p2", list[0].Project.ID)
	require.NotNil(t, list[0].CostAnalysis)
	require.Equal(t, 37.5, list[0].CostAnalysis.TotalCost)
	require.Nil(t, list[1].CostAnalysis)

	got, err := repo.GetCostAnalysisByProjectID(ctx, "p2")
	require.NoError(t, err)
	require.Equal(t, "c1", got.ID)

	none, err := repo.GetCostAnalysisByProjectID(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, none.ID)

	t.Run("rolls back project when analysis insert fails", func(t *testing.T) {
		p3 := p1
		p3.ID = "p3"
		dup := ca // same analysis id violates the primary key
		_, _, err := repo.CreateWithCostAnalysis(ctx, p3, dup)
		require.Error(t, err)

		p, err := repo.GetByID(ctx, "p3")
		require.NoError(t, err)
		require.Empty(t, p.ID)
	})

	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Tower", p.ProjectName)
	require.Equal(t, entities.ProjectTypeCommercial, p.ProjectType)
}
