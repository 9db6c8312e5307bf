package analysis

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kotaicode/gpx-analyzer/internal/overpass"
	"github.com/kotaicode/gpx-analyzer/internal/track"
)

func RegisterRoutes(r fiber.Router, svc *Service, maxUploadBytes int64) {
	r.Post("/analyze_surface", func(c *fiber.Ctx) error {
		header, err := c.FormFile("gpx_file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid file format. Please upload a GPX file")
		}
		if !strings.HasSuffix(strings.ToLower(header.Filename), ".gpx") {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid file format. Please upload a GPX file")
		}
		if header.Size > maxUploadBytes {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "File too large")
		}

		file, err := header.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid GPX file format")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid GPX file format")
		}

		report, err := svc.Analyze(c.Context(), data)
		if err != nil {
			switch {
			case errors.Is(err, track.ErrMalformedGPX):
				return fiber.NewError(fiber.StatusBadRequest, "Invalid GPX file format")
			case errors.Is(err, ErrNoTrackPoints):
				return fiber.NewError(fiber.StatusBadRequest, "No track points found in GPX file")
			case errors.Is(err, overpass.ErrUnavailable):
				return fiber.NewError(fiber.StatusServiceUnavailable, "External service temporarily unavailable")
			default:
				log.Printf("surface analysis failed: %v", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
			}
		}

		return c.JSON(report)
	})
}
