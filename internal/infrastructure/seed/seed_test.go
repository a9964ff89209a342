package seed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"brickonomics/internal/adapter/persistence/repository"
	"brickonomics/internal/domain/entities"
	"brickonomics/internal/domain/estimator"
	"brickonomics/internal/infrastructure/database"
	"brickonomics/internal/infrastructure/migrations"
	"brickonomics/internal/usecase/interfaces"
	mock_interfaces "brickonomics/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunIsIdempotent(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Up(db))

	materials := repository.NewMaterialSQLiteRepository(db)
	rates := repository.NewLaborRateSQLiteRepository(db)
	ctx := context.Background()

	stats, err := Run(ctx, materials, rates)
	require.NoError(t, err)
	require.Equal(t, Stats{Inserts: 8}, stats)

	stats, err = Run(ctx, materials, rates)
	require.NoError(t, err)
	require.Equal(t, Stats{Skipped: 8}, stats)

	all, err := materials.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "cement", all[0].Category)
	require.Equal(t, "aggregate", all[4].Category)

	// The seeded catalog reproduces the reference residential scenario.
	labor, err := rates.List(ctx, interfaces.LaborRateFilter{})
	require.NoError(t, err)
	est, err := estimator.NewDefault().Estimate(entities.ProjectTypeResidential, 1000, estimator.ReferenceData{
		Materials:  all,
		LaborRates: labor,
	})
	require.NoError(t, err)
	require.Equal(t, 2103125.0, est.TotalCost)
}

func TestRunStopsOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
	rates := mock_interfaces.NewMockILaborRateRepository(ctrl)

	boom := errors.New("throttled")
	materials.EXPECT().List(gomock.Any(), "cement").Return(nil, nil)
	materials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Material{}, boom)

	stats, err := Run(context.Background(), materials, rates)
	require.ErrorIs(t, err, boom)
	require.Zero(t, stats.Inserts)
}
