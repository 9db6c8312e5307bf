package geo

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// IntersectionLength returns the planar length, in degrees, of the part of
// the given line lying inside the corridor. The computation is analytic: for
// each line edge it finds the parameter intervals covered by the capsules
// that make up the corridor and measures their union, so there is no
// discretization error. A degenerate line contributes zero. Non-finite
// coordinates fail with ErrGeometry.
func (c *Corridor) IntersectionLength(line orb.LineString) (float64, error) {
	for _, p := range line {
		if !finite(p) {
			return 0, fmt.Errorf("%w: non-finite coordinate %v", ErrGeometry, p)
		}
	}

	var total float64
	for i := 1; i < len(line); i++ {
		p, q := line[i-1], line[i]
		if p == q {
			continue
		}

		var intervals [][2]float64
		for j := 1; j < len(c.line); j++ {
			a, b := c.line[j-1], c.line[j]
			if a == b {
				continue
			}
			if lo, hi, ok := capsuleInterval(p, q, a, b, c.radius); ok {
				intervals = append(intervals, [2]float64{lo, hi})
			}
		}

		total += covered(intervals) * planar.Distance(p, q)
	}
	return total, nil
}

// capsuleInterval computes the interval of t in [0,1] for which the point
// p + t(q-p) lies within distance r of segment ab. A capsule is convex, so
// the result is a single interval, assembled from its endpoint circles and
// rectangle part.
func capsuleInterval(p, q, a, b orb.Point, r float64) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	any := false

	if l, h, ok := circleInterval(p, q, a, r); ok {
		lo, hi, any = math.Min(lo, l), math.Max(hi, h), true
	}
	if l, h, ok := circleInterval(p, q, b, r); ok {
		lo, hi, any = math.Min(lo, l), math.Max(hi, h), true
	}
	if l, h, ok := rectInterval(p, q, a, b, r); ok {
		lo, hi, any = math.Min(lo, l), math.Max(hi, h), true
	}
	if !any {
		return 0, 0, false
	}

	lo = math.Max(lo, 0)
	hi = math.Min(hi, 1)
	if hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// circleInterval solves |p + t(q-p) - center|^2 <= r^2 for t.
func circleInterval(p, q, center orb.Point, r float64) (float64, float64, bool) {
	vx, vy := q.Lon()-p.Lon(), q.Lat()-p.Lat()
	wx, wy := p.Lon()-center.Lon(), p.Lat()-center.Lat()

	A := vx*vx + vy*vy
	B := 2 * (wx*vx + wy*vy)
	C := wx*wx + wy*wy - r*r

	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-B - sq) / (2 * A), (-B + sq) / (2 * A), true
}

// rectInterval restricts t to the rectangle part of the capsule: within
// perpendicular distance r of line ab and projecting onto the segment.
func rectInterval(p, q, a, b orb.Point, r float64) (float64, float64, bool) {
	dx, dy := b.Lon()-a.Lon(), b.Lat()-a.Lat()
	length := math.Hypot(dx, dy)
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	vx, vy := q.Lon()-p.Lon(), q.Lat()-p.Lat()
	sx, sy := p.Lon()-a.Lon(), p.Lat()-a.Lat()

	lo, hi := math.Inf(-1), math.Inf(1)

	// along-axis: 0 <= s·u + t v·u <= length
	if ok := constrain(&lo, &hi, sx*ux+sy*uy, vx*ux+vy*uy, 0, length); !ok {
		return 0, 0, false
	}
	// perpendicular: -r <= s·n + t v·n <= r
	if ok := constrain(&lo, &hi, sx*nx+sy*ny, vx*nx+vy*ny, -r, r); !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// constrain intersects [lo,hi] with {t : min <= alpha + beta*t <= max}.
func constrain(lo, hi *float64, alpha, beta, min, max float64) bool {
	if beta == 0 {
		return alpha >= min && alpha <= max
	}
	t0 := (min - alpha) / beta
	t1 := (max - alpha) / beta
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	*lo = math.Max(*lo, t0)
	*hi = math.Min(*hi, t1)
	return *hi > *lo
}

// covered measures the union of intervals within [0,1].
func covered(intervals [][2]float64) float64 {
	if len(intervals) == 0 {
		return 0
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i][0] < intervals[j][0] })

	var sum float64
	cur := intervals[0]
	for _, iv := range intervals[1:] {
		if iv[0] > cur[1] {
			sum += cur[1] - cur[0]
			cur = iv
			continue
		}
		if iv[1] > cur[1] {
			cur[1] = iv[1]
		}
	}
	return sum + cur[1] - cur[0]
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p.Lon()) && !math.IsInf(p.Lon(), 0) &&
		!math.IsNaN(p.Lat()) && !math.IsInf(p.Lat(), 0)
}
