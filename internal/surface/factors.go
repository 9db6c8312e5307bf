package surface

// Factors holds how well a surface suits each bike type, both in [0,1].
type Factors struct {
	RoadBike   float64
	GravelBike float64
}

// suitability maps OSM surface values to bike suitability factors. It is
// immutable process-wide data; surfaces not listed here score (0,0) for
// both bike types.
var suitability = map[string]Factors{
	"asphalt":       {1.0, 1.0},
	"concrete":      {1.0, 1.0},
	"paving_stones": {0.8, 1.0},
	"sett":          {0.6, 1.0},
	"cobblestone":   {0.5, 1.0},
	"metal":         {0.6, 0.8},
	"wood":          {0.5, 0.8},
	"gravel":        {0.0, 1.0},
	"fine_gravel":   {0.0, 1.0},
	"dirt":          {0.0, 1.0},
	"earth":         {0.0, 1.0},
	"grass":         {0.0, 0.8},
	"sand":          {0.0, 0.6},
	"mud":           {0.0, 0.5},
	"compacted":     {0.4, 1.0},
	"clay":          {0.0, 0.8},
	"snow":          {0.0, 0.2},
	"ice":           {0.0, 0.1},
}
