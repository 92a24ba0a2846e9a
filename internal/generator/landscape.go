package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

// Landscape geometry. The terrain is a sinusoid with bounded jitter; plants
// are vertical stems planted at fixed intervals on the jittered surface.
const (
	landscapeSamples = 200
	landscapeSpanX   = 100.0
	terrainBaseline  = 30.0
	skyCeiling       = 60.0
	jitterFrac       = 0.15
	plantSpacing     = 15.0
	skyTintFrac      = 0.35
)

// terrainProfile holds the per-gravity-class landscape shape.
type terrainProfile struct {
	Amp         float64 // sinusoid amplitude
	Freq        float64 // sinusoid frequency
	PlantHeight float64 // stem height above the terrain
	StemWidth   float64 // stem stroke width
}

// terrainFor maps a gravity class to its landscape shape. Weak gravity
// means tall rolling hills and towering flora; strong gravity flattens both.
func terrainFor(g params.Gravity) terrainProfile {
	switch g {
	case params.GravityLow:
		return terrainProfile{Amp: 15, Freq: 1.0 / 3.0, PlantHeight: 12, StemWidth: 2}
	case params.GravityHigh:
		return terrainProfile{Amp: 4, Freq: 2.0 / 3.0, PlantHeight: 2.5, StemWidth: 4.5}
	default:
		return terrainProfile{Amp: 8, Freq: 1.0 / 2.0, PlantHeight: 6, StemWidth: 3}
	}
}

// LandscapeParams parameterizes a procedural garden landscape.
//
// Garden selects the color palette; Palette, when non-nil, overrides it.
// Gravity is a free-form label resolved with params.ParseGravity (unknown
// labels fall back to normal gravity). Star, when set, tints the sky toward
// the star's color and must be a known class.
//
// Jitter is drawn from Rand when provided, otherwise from a fresh source
// seeded with Seed. Two calls with the same parameters and seed produce
// identical specs.
type LandscapeParams struct {
	Garden  params.GardenKind
	Palette *params.Palette
	Gravity string
	Star    params.StarClass
	Seed    int64
	Rand    *rand.Rand `mapstructure:"-"`
}

// Landscape generates a side-view garden landscape: a sky fill, a jittered
// sinusoid terrain fill, and one plant stem every 15 units, left to right.
func Landscape(p LandscapeParams) (chart.Spec, error) {
	var pal params.Palette
	title := "Alien Garden"
	if kind, err := params.ParseGardenKind(string(p.Garden)); err == nil {
		title = kind.Label()
		pal = kind.Palette()
	} else if p.Palette == nil {
		return chart.Spec{}, err
	}
	if p.Palette != nil {
		pal = *p.Palette
	}
	if err := pal.Validate(); err != nil {
		return chart.Spec{}, err
	}

	gravity, _ := params.ParseGravity(p.Gravity)
	prof := terrainFor(gravity)

	sky := pal.Sky
	subtitle := gravity.Label()
	if p.Star != "" {
		if _, err := params.ParseStarClass(string(p.Star)); err != nil {
			return chart.Spec{}, err
		}
		sky = tintSky(pal.Sky, p.Star)
		subtitle = fmt.Sprintf("%s, under a %s", gravity.Label(), p.Star.Label())
	}

	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(p.Seed))
	}

	xs := linspace(0, landscapeSpanX, landscapeSamples)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		jitter := (rng.Float64()*2 - 1) * jitterFrac * prof.Amp
		ys[i] = terrainBaseline + math.Sin(x*prof.Freq)*prof.Amp + jitter
	}

	b := chart.NewBuilder(title).
		Subtitle(subtitle).
		Axes("Distance (m)", "Elevation (m)").
		Area("sky", []float64{0, landscapeSpanX}, []float64{skyCeiling, skyCeiling}).
		Styled(chart.Style{Color: sky, FillColor: sky}).
		Area("terrain", xs, ys).
		Styled(chart.Style{Color: pal.Ground, FillColor: pal.Ground})

	plantCount := int(landscapeSpanX / plantSpacing)
	for k := 1; k <= plantCount; k++ {
		x := float64(k) * plantSpacing
		base, err := interpolateAt(xs, ys, x)
		if err != nil {
			return chart.Spec{}, err
		}
		b.Segment(fmt.Sprintf("plant-%d", k), x, base, x, base+prof.PlantHeight).
			Styled(chart.Style{Color: pal.Flora, Width: prof.StemWidth})
	}

	return b.Build()
}

// tintSky blends the palette sky color toward the star's apparent color.
func tintSky(skyHex string, class params.StarClass) string {
	base, err := colorful.Hex(skyHex)
	if err != nil {
		return skyHex
	}
	tint, err := colorful.Hex(starTable[class].Color)
	if err != nil {
		return skyHex
	}
	return base.BlendLab(tint, skyTintFrac).Clamped().Hex()
}
