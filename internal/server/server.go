package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kotaicode/gpx-analyzer/internal/analysis"
	"github.com/kotaicode/gpx-analyzer/internal/config"
)

type Server struct {
	App *fiber.App
	Cfg config.Config
}

func NewServer(cfg config.Config, roads analysis.RoadSource) *Server {
	app := fiber.New(fiber.Config{
		// Leave headroom above the per-file cap enforced in the handler.
		BodyLimit: int(cfg.MaxUploadBytes) + 64*1024,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App: app,
		Cfg: cfg,
	}

	registerRoutes(s, roads)
	return s
}

func registerRoutes(s *Server, roads analysis.RoadSource) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	svc := analysis.NewService(roads, s.Cfg.CorridorBufferDegrees)
	analysis.RegisterRoutes(s.App, svc, s.Cfg.MaxUploadBytes)
}
