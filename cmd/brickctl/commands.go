package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"brickonomics/internal/adapter/http/dto/response"
	"brickonomics/internal/adapter/persistence/repository"
	"brickonomics/internal/infrastructure/database"
	"brickonomics/internal/infrastructure/migrations"
	"brickonomics/internal/infrastructure/seed"
	"brickonomics/internal/usecase"
	"brickonomics/pkg/config"
	"brickonomics/pkg/logger"

	"github.com/spf13/cobra"
)

type estimateFlags struct {
	projectType string
	area        float64
	location    string
	save        bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "brickctl",
		Short:         "Operate the brickonomics estimator",
		Long:          "brickctl applies migrations, seeds reference prices and runs cost estimates against the configured stores.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			if _, err := logger.Init(c.LogLevel, c.LogFormat); err != nil {
				return err
			}
			cfg = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply SQLite migrations and create DynamoDB tables when enabled",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), cfg, out)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default materials and labor rates",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(cmd.Context(), cfg, out)
			},
		},
		newEstimateCmd(&cfg, out),
	)

	return root
}

func newEstimateCmd(cfg **config.Config, out io.Writer) *cobra.Command {
	var flags estimateFlags
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a project and print the breakdown as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.Context(), *cfg, flags, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.projectType, "type", "", "Project type: residential, commercial, industrial or infrastructure")
	f.Float64Var(&flags.area, "area", 0, "Built-up area in square feet")
	f.StringVar(&flags.location, "location", "", "Project location")
	f.BoolVar(&flags.save, "save", false, "Store the estimate in the history")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func runMigrate(ctx context.Context, cfg *config.Config, out io.Writer) error {
	db, err := database.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		return err
	}
	version, err := migrations.Version(db)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "sqlite schema at version %d\n", version)

	if cfg.StoreBackend != config.StoreDynamoDB {
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}
	if err := database.EnsureTables(ctx, ddb, database.TableSpecs(cfg)); err != nil {
		return err
	}
	fmt.Fprintln(out, "dynamodb tables ready")
	return nil
}

func runSeed(ctx context.Context, cfg *config.Config, out io.Writer) error {
	stores, err := repository.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()

	stats, err := seed.Run(ctx, stores.Materials, stores.LaborRates)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "seeded %d records, skipped %d\n", stats.Inserts, stats.Skipped)
	return nil
}

func runEstimate(ctx context.Context, cfg *config.Config, flags estimateFlags, out io.Writer) error {
	stores, err := repository.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()

	uc := usecase.NewEstimateUseCase(stores.Materials, stores.LaborRates, stores.Estimates, nil)
	cmd := usecase.EstimateCommand{
		ProjectType: flags.projectType,
		Area:        flags.area,
		Location:    flags.location,
	}

	estimate := uc.PriceEstimate
	if flags.save {
		estimate = uc.GenerateEstimate
	}
	est, err := estimate(ctx, cmd)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(response.FromCostEstimate(est))
}
