package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable is returned for any failure to obtain road data: network
// errors, timeouts and non-success status codes alike. The caller surfaces
// it as a temporarily-unavailable condition; the client never retries.
var ErrUnavailable = errors.New("overpass service unavailable")

type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}
}

// SurfaceWays fetches all ways carrying a surface tag inside the bounding
// box, with full geometry. The box is "south,west,north,east" in degrees.
func (c *Client) SurfaceWays(ctx context.Context, bbox string) ([]Element, error) {
	query := fmt.Sprintf(`[out:json][timeout:%d];
(
  way(%s)["surface"];
);
out geom;`, int(c.timeout.Seconds()), bbox)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return body.Elements, nil
}
