package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "paint_estimator/docs"
	"paint_estimator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Paint Estimator API
// @version         1.0
// @description     Paint quantity and cost estimates for rooms and projects, with catalog and market price lookup.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name         estimates
// @tag.description  Room and project paint estimates
// @tag.name         catalog
// @tag.name         prices
// @tag.description  Market price lookup (mocked when no SerpApi key is set)

func main() {
	// SIGINT/SIGTERM cancel startup work as well as the running server.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes.Run(ctx)
}
