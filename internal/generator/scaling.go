package generator

import (
	"fmt"
	"math"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

// Gravity domain shared by the scaling tables. Values outside it are
// invalid parameters, not clamped.
const (
	gravityMin = 0.1
	gravityMax = 5.0
)

// Earth-calibrated constants. The figures are illustrative exhibit numbers,
// not biomechanics derivations.
const (
	thicknessExp         = 0.9
	earthMaxPlantHeightM = 115.0 // tallest known coast redwood
	earthJumpHeightM     = 0.5

	thermalMinC = -200.0
	thermalMaxC = 600.0

	carbonOptimumC       = 15.0
	carbonToleranceC     = 45.0
	carbonPeakViability  = 100.0
	siliconOptimumC      = 280.0
	siliconToleranceC    = 130.0
	siliconPeakViability = 92.0
)

// bodyPart is one structural element with its Earth (1 g) baselines.
type bodyPart struct {
	Name      string
	Thickness float64 // cm at 1 g
	Strength  float64 // load index at 1 g
}

// bodyParts in display order. Legs lead: they set the baseline the other
// parts are read against.
var bodyParts = []bodyPart{
	{"Legs", 10.0, 100},
	{"Spine", 8.0, 80},
	{"Arms", 6.0, 55},
	{"Neck", 4.0, 35},
}

// starData describes one host star archetype.
type starData struct {
	TempK      float64
	Color      string
	Brightness float64 // luminosity relative to the Sun
}

var starTable = map[params.StarClass]starData{
	params.StarRedDwarf:  {TempK: 3200, Color: "#ff6b4a", Brightness: 0.05},
	params.StarSunLike:   {TempK: 5800, Color: "#ffd27d", Brightness: 1.0},
	params.StarBlueGiant: {TempK: 15000, Color: "#9bb0ff", Brightness: 8000},
}

// checkGravityRange rejects gravities outside the supported domain.
func checkGravityRange(g float64) error {
	if math.IsNaN(g) || g < gravityMin || g > gravityMax {
		return params.NewParameterError("gravity", g, fmt.Sprintf("outside [%g, %g] g", gravityMin, gravityMax))
	}
	return nil
}

// BodyPlan generates the load-bearing body plan table for a surface gravity
// in [0.1, 5] g. Limb thickness scales as g^0.9 and support strength
// linearly with g, so at exactly 1 g every part shows its Earth baseline.
func BodyPlan(g float64) (chart.Spec, error) {
	if err := checkGravityRange(g); err != nil {
		return chart.Spec{}, err
	}

	xs := make([]float64, len(bodyParts))
	labels := make([]string, len(bodyParts))
	thickness := make([]float64, len(bodyParts))
	strength := make([]float64, len(bodyParts))
	for i, part := range bodyParts {
		xs[i] = float64(i)
		labels[i] = part.Name
		thickness[i] = part.Thickness * math.Pow(g, thicknessExp)
		strength[i] = part.Strength * g
	}

	return chart.NewBuilder("Load-Bearing Body Plan").
		Subtitle(fmt.Sprintf("Surface gravity %.2f g", g)).
		Axes("", "Scaled value (per-series units)").
		Bar("limb thickness (cm)", xs, thickness).
		Styled(chart.Style{Color: "#d95f02"}).
		Labeled(labels...).
		Bar("support strength (index)", xs, strength).
		Styled(chart.Style{Color: "#7570b3"}).
		Labeled(labels...).
		Build()
}

// ReachAndLeap generates the inverse-scaling curves for maximum plant height
// and standing jump height across the gravity domain, with a marker pair at
// the requested gravity.
func ReachAndLeap(g float64) (chart.Spec, error) {
	if err := checkGravityRange(g); err != nil {
		return chart.Spec{}, err
	}

	xs := linspace(gravityMin, gravityMax, 120)
	plants := make([]float64, len(xs))
	jumps := make([]float64, len(xs))
	for i, x := range xs {
		plants[i] = earthMaxPlantHeightM / x
		jumps[i] = earthJumpHeightM / x * 100 // cm
	}

	return chart.NewBuilder("Reach and Leap").
		Subtitle(fmt.Sprintf("Marked at %.2f g", g)).
		Axes("Surface gravity (g)", "Height (per-series units)").
		Line("tallest plant (m)", xs, plants).
		Styled(chart.Style{Color: "#2e8b57", Width: 2}).
		Line("standing jump (cm)", xs, jumps).
		Styled(chart.Style{Color: "#1f77b4", Width: 2}).
		Scatter("this world",
			[]float64{g, g},
			[]float64{earthMaxPlantHeightM / g, earthJumpHeightM / g * 100}).
		Styled(chart.Style{Color: "#c0392b", MarkerSize: 10}).
		Build()
}

// viability returns the illustrative survivability percentage of a
// biochemistry at a temperature in celsius.
func viability(kind params.MoleculeKind, tC float64) float64 {
	switch kind {
	case params.MoleculeSilicon:
		d := (tC - siliconOptimumC) / siliconToleranceC
		return siliconPeakViability * math.Exp(-d*d)
	default:
		d := (tC - carbonOptimumC) / carbonToleranceC
		return carbonPeakViability * math.Exp(-d*d)
	}
}

// ThermalViability generates viability curves over the -200 to 600 °C
// domain. A zero kind plots both chemistries; a set kind plots just that
// one. tempsC optionally replaces the default sampling grid; every sample
// must lie inside the domain.
func ThermalViability(kind params.MoleculeKind, tempsC []float64) (chart.Spec, error) {
	kinds := []params.MoleculeKind{params.MoleculeCarbon, params.MoleculeSilicon}
	if kind != "" {
		parsed, err := params.ParseMoleculeKind(string(kind))
		if err != nil {
			return chart.Spec{}, err
		}
		kinds = []params.MoleculeKind{parsed}
	}

	if tempsC == nil {
		tempsC = linspace(thermalMinC, thermalMaxC, 161)
	}
	if len(tempsC) < 2 {
		return chart.Spec{}, params.NewParameterError("temps", tempsC, "need at least two samples")
	}
	for _, t := range tempsC {
		if math.IsNaN(t) || t < thermalMinC || t > thermalMaxC {
			return chart.Spec{}, params.NewParameterError("temps", t, fmt.Sprintf("outside [%g, %g] °C", thermalMinC, thermalMaxC))
		}
	}

	b := chart.NewBuilder("Thermal Viability").
		Subtitle("Illustrative survivability by backbone chemistry").
		Axes("Temperature (°C)", "Viability (%)")
	colors := map[params.MoleculeKind]string{
		params.MoleculeCarbon:  "#2e8b57",
		params.MoleculeSilicon: "#b87333",
	}
	for _, k := range kinds {
		ys := make([]float64, len(tempsC))
		for i, t := range tempsC {
			ys[i] = viability(k, t)
		}
		b.Line(k.Label(), tempsC, ys).
			Styled(chart.Style{Color: colors[k], Width: 2})
	}
	return b.Build()
}

// StarProfile generates the per-class comparison table (effective
// temperature, Wien peak wavelength, relative brightness) with the
// requested class highlighted.
func StarProfile(class params.StarClass) (chart.Spec, error) {
	parsed, err := params.ParseStarClass(string(class))
	if err != nil {
		return chart.Spec{}, err
	}

	classes := params.StarClasses()
	xs := make([]float64, len(classes))
	labels := make([]string, len(classes))
	temps := make([]float64, len(classes))
	peaks := make([]float64, len(classes))
	bright := make([]float64, len(classes))
	selected := 0
	for i, c := range classes {
		data := starTable[c]
		xs[i] = float64(i)
		labels[i] = c.Label()
		temps[i] = data.TempK
		peaks[i] = wienB / data.TempK
		bright[i] = data.Brightness
		if c == parsed {
			selected = i
		}
	}

	return chart.NewBuilder("Starlight Profiles").
		Subtitle("Highlighted: "+parsed.Label()).
		Axes("", "Value (per-series units)").
		Bar("effective temperature (K)", xs, temps).
		Styled(chart.Style{Color: "#d95f02"}).
		Labeled(labels...).
		Bar("peak emission (nm)", xs, peaks).
		Styled(chart.Style{Color: "#7570b3"}).
		Labeled(labels...).
		Bar("relative brightness (Sun = 1)", xs, bright).
		Styled(chart.Style{Color: "#1b9e77"}).
		Labeled(labels...).
		Scatter("selected", []float64{float64(selected)}, []float64{starTable[parsed].TempK}).
		Styled(chart.Style{Color: starTable[parsed].Color, MarkerSize: 12}).
		Build()
}

// ConvergentTraits generates the bar table of traits that evolved
// independently more than once on Earth.
func ConvergentTraits() (chart.Spec, error) {
	traits := []struct {
		Name  string
		Count float64
	}{
		{"Eyes", 40},
		{"Bioluminescence", 27},
		{"Multicellularity", 25},
		{"Venom", 18},
		{"Echolocation", 6},
		{"Powered flight", 4},
	}

	xs := make([]float64, len(traits))
	labels := make([]string, len(traits))
	counts := make([]float64, len(traits))
	for i, tr := range traits {
		xs[i] = float64(i)
		labels[i] = tr.Name
		counts[i] = tr.Count
	}

	return chart.NewBuilder("Convergent Evolution").
		Subtitle("Traits that evolved more than once on Earth").
		Axes("", "Independent origins (estimate)").
		Bar("independent origins", xs, counts).
		Styled(chart.Style{Color: "#2e8b57"}).
		Labeled(labels...).
		Build()
}

// HabitatHardiness generates the extreme-environment survivability table
// for the Extreme Gardens wing.
func HabitatHardiness() (chart.Spec, error) {
	habitats := []struct {
		Name  string
		Index float64
	}{
		{"Hydrothermal vent", 92},
		{"Polar ice", 88},
		{"Hypersaline lake", 80},
		{"Deep subsurface", 76},
		{"Atacama desert", 70},
		{"Stratosphere", 55},
		{"Low orbit (exposed)", 35},
	}

	xs := make([]float64, len(habitats))
	labels := make([]string, len(habitats))
	indexes := make([]float64, len(habitats))
	for i, h := range habitats {
		xs[i] = float64(i)
		labels[i] = h.Name
		indexes[i] = h.Index
	}

	return chart.NewBuilder("Extreme Garden Hardiness").
		Subtitle("Survivability index of known extremophiles").
		Axes("", "Hardiness index (0-100)").
		Bar("hardiness", xs, indexes).
		Styled(chart.Style{Color: "#c0392b"}).
		Labeled(labels...).
		Build()
}
