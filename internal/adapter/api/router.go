package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type RouterConfig struct {
	FrontendDir string
	CORSOrigins []string
	AccessLog   bool
}

func SetupRouter(app *fiber.App, handler *SupportHandler, metrics *Metrics, cfg RouterConfig) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	origins := "*"
	if len(cfg.CORSOrigins) > 0 {
		origins = strings.Join(cfg.CORSOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", handler.HandleHealth)
	app.Get("/api", handler.HandleAPIInfo)
	app.Get("/metrics", metrics.Handler())

	// Endpoints
	app.Post("/chat", handler.HandleChat)
	app.Post("/analyze", handler.HandleAnalyze)

	setupStatic(app, cfg.FrontendDir, handler)
}
