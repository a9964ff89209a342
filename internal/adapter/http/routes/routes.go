package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"brickonomics/internal/adapter/http/handlers"
	"brickonomics/internal/adapter/http/middleware"
	"brickonomics/internal/adapter/persistence/repository"
	"brickonomics/internal/infrastructure/seed"
	"brickonomics/internal/usecase"
	"brickonomics/pkg/config"
	"brickonomics/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Estimates    *handlers.EstimateHandler
	Materials    *handlers.MaterialHandler
	LaborRates   *handlers.LaborRateHandler
	Projects     *handlers.ProjectHandler
	CostAnalysis *handlers.CostAnalysisHandler
}

// NewHandlers wires use cases and handlers on top of the given stores.
func NewHandlers(s *repository.Stores) Handlers {
	estimateUseCase := usecase.NewEstimateUseCase(s.Materials, s.LaborRates, s.Estimates, nil)

	return Handlers{
		Estimates:    handlers.NewEstimateHandler(estimateUseCase),
		Materials:    handlers.NewMaterialHandler(usecase.NewMaterialUseCase(s.Materials)),
		LaborRates:   handlers.NewLaborRateHandler(usecase.NewLaborRateUseCase(s.LaborRates)),
		Projects:     handlers.NewProjectHandler(usecase.NewProjectUseCase(s.Projects)),
		CostAnalysis: handlers.NewCostAnalysisHandler(usecase.NewCostAnalysisUseCase(s.Projects, estimateUseCase)),
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimates)
	addReferenceRoutes(v1, h.Materials, h.LaborRates)
	addProjectRoutes(v1, h.Projects, h.CostAnalysis)

	return router
}

// Run opens the stores, optionally seeds defaults and serves HTTP until
// SIGINT or SIGTERM, then shuts down within cfg.ShutdownTimeout.
func Run(cfg *config.Config) error {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := repository.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()

	if cfg.SeedDefaults {
		stats, err := seed.Run(ctx, stores.Materials, stores.LaborRates)
		if err != nil {
			return err
		}
		logger.L().Info("reference data seeded", zap.Int("inserts", stats.Inserts), zap.Int("skipped", stats.Skipped))
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(NewHandlers(stores)),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Recovery())
}
