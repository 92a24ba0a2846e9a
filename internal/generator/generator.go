package generator

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

// Generator names as referenced by catalog chart descriptors.
const (
	NameLandscape   = "landscape"
	NameMolecule    = "molecule"
	NameSpectrum    = "spectrum"
	NameBodyPlan    = "body-plan"
	NameReachLeap   = "reach-leap"
	NameThermal     = "thermal-viability"
	NameStarProfile = "star-emission"
	NameConvergent  = "convergent-traits"
	NameHabitat     = "habitat-hardiness"
)

// Names lists every registered generator in stable order.
func Names() []string {
	return []string{
		NameLandscape,
		NameMolecule,
		NameSpectrum,
		NameBodyPlan,
		NameReachLeap,
		NameThermal,
		NameStarProfile,
		NameConvergent,
		NameHabitat,
	}
}

// Known reports whether name refers to a registered generator.
func Known(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Build runs the named generator against a raw parameter map, decoding the
// map into the generator's typed parameters first. Unknown generator names
// and undecodable maps are invalid parameters.
func Build(name string, raw map[string]any) (chart.Spec, error) {
	switch name {
	case NameLandscape:
		var cfg struct {
			Garden  string          `mapstructure:"garden"`
			Palette *params.Palette `mapstructure:"palette"`
			Gravity string          `mapstructure:"gravity"`
			Star    string          `mapstructure:"star"`
			Seed    int64           `mapstructure:"seed"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return Landscape(LandscapeParams{
			Garden:  params.GardenKind(cfg.Garden),
			Palette: cfg.Palette,
			Gravity: cfg.Gravity,
			Star:    params.StarClass(cfg.Star),
			Seed:    cfg.Seed,
		})

	case NameMolecule:
		var cfg struct {
			Kind string `mapstructure:"kind"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return Molecule(MoleculeParams{Kind: params.MoleculeKind(cfg.Kind)})

	case NameSpectrum:
		var cfg struct {
			Temperature float64 `mapstructure:"temperature"`
			Color       string  `mapstructure:"color"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return Spectrum(SpectrumParams{Temperature: cfg.Temperature, Color: cfg.Color})

	case NameBodyPlan:
		var cfg struct {
			Gravity float64 `mapstructure:"gravity"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return BodyPlan(cfg.Gravity)

	case NameReachLeap:
		var cfg struct {
			Gravity float64 `mapstructure:"gravity"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return ReachAndLeap(cfg.Gravity)

	case NameThermal:
		var cfg struct {
			Kind  string    `mapstructure:"kind"`
			Temps []float64 `mapstructure:"temps"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return ThermalViability(params.MoleculeKind(cfg.Kind), cfg.Temps)

	case NameStarProfile:
		var cfg struct {
			Class string `mapstructure:"class"`
		}
		if err := decode(name, raw, &cfg); err != nil {
			return chart.Spec{}, err
		}
		return StarProfile(params.StarClass(cfg.Class))

	case NameConvergent:
		return ConvergentTraits()

	case NameHabitat:
		return HabitatHardiness()

	default:
		return chart.Spec{}, params.NewParameterError("generator", name, "unknown generator")
	}
}

// decode maps a raw parameter map onto a typed config struct.
func decode(name string, raw map[string]any, out any) error {
	if raw == nil {
		return nil
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		return params.NewParameterError(name+" params", raw, err.Error())
	}
	return nil
}

// linspace returns n evenly spaced samples over [lo, hi], endpoints included.
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}

// interpolateAt returns the y value of a sampled series at an exact x by
// linear interpolation between the two neighboring samples. x must lie
// within the sampled range.
func interpolateAt(xs, ys []float64, x float64) (float64, error) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, fmt.Errorf("interpolate: need matching series of at least two samples")
	}
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, fmt.Errorf("interpolate: x=%v outside sampled range [%v, %v]", x, xs[0], xs[len(xs)-1])
	}

	step := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	i := int((x - xs[0]) / step)
	if i >= len(xs)-1 {
		i = len(xs) - 2
	}
	t := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + (ys[i+1]-ys[i])*t, nil
}
