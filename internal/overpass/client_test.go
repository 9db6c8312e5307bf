package overpass

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleResponse = `{
  "elements": [
    {
      "type": "way",
      "id": 42,
      "tags": {"surface": "asphalt", "highway": "residential"},
      "geometry": [
        {"lat": 47.123, "lon": 8.123},
        {"lat": 47.124, "lon": 8.124}
      ]
    },
    {
      "type": "way",
      "id": 43,
      "tags": {"surface": "gravel"}
    }
  ]
}`

func TestSurfaceWays(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 30*time.Second)
	elements, err := client.SurfaceWays(context.Background(), "47.122,8.122,47.126,8.126")
	if err != nil {
		t.Fatalf("surface ways: %v", err)
	}

	if !strings.Contains(gotBody, `way(47.122,8.122,47.126,8.126)["surface"]`) {
		t.Fatalf("query body missing bbox selector: %s", gotBody)
	}
	if !strings.Contains(gotBody, "[out:json][timeout:30]") {
		t.Fatalf("query body missing header: %s", gotBody)
	}
	if !strings.Contains(gotBody, "out geom;") {
		t.Fatalf("query body missing geometry output: %s", gotBody)
	}

	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if elements[0].Tags["surface"] != "asphalt" {
		t.Fatalf("unexpected tags: %+v", elements[0].Tags)
	}
	if len(elements[0].Geometry) != 2 || elements[0].Geometry[0].Lat != 47.123 {
		t.Fatalf("unexpected geometry: %+v", elements[0].Geometry)
	}
	if elements[1].Geometry != nil {
		t.Fatalf("expected nil geometry for element without one")
	}
}

func TestSurfaceWaysNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.SurfaceWays(context.Background(), "0,0,1,1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSurfaceWaysNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.SurfaceWays(context.Background(), "0,0,1,1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSurfaceWaysMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.SurfaceWays(context.Background(), "0,0,1,1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
