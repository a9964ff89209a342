package main

import (
	"fmt"
	"os"

	_ "brickonomics/docs"
	"brickonomics/internal/adapter/http/routes"
	"brickonomics/pkg/config"
	"brickonomics/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Brickonomics API
// @version         1.0
// @description     Construction cost estimation service: reference prices, estimates, projects and cost analysis.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.MustLoad()

	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := routes.Run(cfg); err != nil {
		logger.L().Error("server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
