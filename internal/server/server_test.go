package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/kotaicode/gpx-analyzer/internal/config"
	"github.com/kotaicode/gpx-analyzer/internal/overpass"
)

type noRoads struct{}

func (noRoads) SurfaceWays(context.Context, string) ([]overpass.Element, error) {
	return nil, nil
}

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0", MaxUploadBytes: 1024}, noRoads{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestAnalyzeRouteRegistered(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0", MaxUploadBytes: 1024, CorridorBufferDegrees: 0.0005}, noRoads{})

	req := httptest.NewRequest("POST", "/analyze_surface", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	// No upload attached: the route must answer 400, not 404.
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
