package repository

import (
	"context"
	"database/sql"
	"fmt"

	"brickonomics/internal/infrastructure/database"
	"brickonomics/internal/infrastructure/migrations"
	"brickonomics/internal/usecase/interfaces"
	"brickonomics/pkg/config"
	"brickonomics/pkg/logger"

	"go.uber.org/zap"
)

// Stores bundles the repositories selected by the configured backend.
// Projects always live in SQLite; reference data and estimate history follow
// STORE_BACKEND.
type Stores struct {
	DB         *sql.DB
	Materials  interfaces.IMaterialRepository
	LaborRates interfaces.ILaborRateRepository
	Estimates  interfaces.IEstimateRepository
	Projects   interfaces.IProjectRepository
}

// OpenStores opens SQLite, applies migrations and wires the reference backend.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	db, err := database.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Stores{DB: db, Projects: NewProjectSQLiteRepository(db)}

	switch cfg.StoreBackend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			db.Close()
			return nil, err
		}
		if cfg.DynamoDBAutoCreate {
			if err := database.EnsureTables(ctx, ddb, database.TableSpecs(cfg)); err != nil {
				db.Close()
				return nil, err
			}
		}
		s.Materials = NewMaterialDynamoRepository(ddb, cfg.MaterialsTable)
		s.LaborRates = NewLaborRateDynamoRepository(ddb, cfg.LaborRatesTable)
		s.Estimates = NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	case config.StoreSQLite:
		s.Materials = NewMaterialSQLiteRepository(db)
		s.LaborRates = NewLaborRateSQLiteRepository(db)
		s.Estimates = NewEstimateSQLiteRepository(db)
	default:
		db.Close()
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	logger.L().Info("stores ready",
		zap.String("backend", cfg.StoreBackend),
		zap.String("sqlite_path", cfg.SQLitePath),
	)
	return s, nil
}

func (s *Stores) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
