package generator

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

// Physical constants for Planck's law, and the sampling window. Wavelengths
// are handled in nanometers at the API surface and converted to meters
// before evaluation.
const (
	planckH   = 6.626e-34 // J·s
	lightC    = 3.0e8     // m/s
	boltzmann = 1.381e-23 // J/K

	spectrumSamples = 500
	spectrumLoNm    = 300.0
	spectrumHiNm    = 800.0

	wienB = 2.898e6 // nm·K
)

// visibleBands are the six visible-color intervals attached to every
// spectrum chart, whatever the temperature.
var visibleBands = []chart.Band{
	{X0: 380, X1: 450, Color: "#7f00ff", Label: "Violet"},
	{X0: 450, X1: 495, Color: "#0047ab", Label: "Blue"},
	{X0: 495, X1: 570, Color: "#00a550", Label: "Green"},
	{X0: 570, X1: 590, Color: "#ffd700", Label: "Yellow"},
	{X0: 590, X1: 620, Color: "#ff8c00", Label: "Orange"},
	{X0: 620, X1: 750, Color: "#d22b2b", Label: "Red"},
}

// SpectrumParams parameterizes a blackbody emission chart.
//
// Temperature is in kelvin and must be positive. Color optionally overrides
// the radiance trace color; when empty, the color of the visible band
// containing the Wien peak is used.
type SpectrumParams struct {
	Temperature float64
	Color       string
}

// Spectrum generates a normalized blackbody emission curve over the
// 300-800 nm window: Planck spectral radiance sampled at 500 wavelengths,
// scaled so the maximum sample is 100. The output contains no randomness;
// identical parameters produce bit-identical specs.
func Spectrum(p SpectrumParams) (chart.Spec, error) {
	if math.IsNaN(p.Temperature) || math.IsInf(p.Temperature, 0) || p.Temperature <= 0 {
		return chart.Spec{}, params.NewParameterError("temperature", p.Temperature, "must be a positive temperature in kelvin")
	}

	color := p.Color
	if color == "" {
		color = colorForPeak(wienB / p.Temperature)
	} else if _, err := colorful.Hex(color); err != nil {
		return chart.Spec{}, params.NewParameterError("color", p.Color, fmt.Sprintf("not a hex color: %v", err))
	}

	xs := linspace(spectrumLoNm, spectrumHiNm, spectrumSamples)
	ys := make([]float64, len(xs))
	peak := 0.0
	for i, nm := range xs {
		ys[i] = planck(nm*1e-9, p.Temperature)
		if ys[i] > peak {
			peak = ys[i]
		}
	}
	if peak <= 0 {
		// Below roughly 25 K every sample underflows to zero.
		return chart.Spec{}, params.NewParameterError("temperature", p.Temperature, "no measurable radiance in the 300-800 nm window")
	}
	for i := range ys {
		ys[i] = ys[i] / peak * 100
	}

	b := chart.NewBuilder("Blackbody Emission").
		Subtitle(fmt.Sprintf("T = %.0f K", p.Temperature)).
		Axes("Wavelength (nm)", "Relative Intensity (%)").
		Area("spectral radiance", xs, ys).
		Styled(chart.Style{Color: color, FillColor: fillFor(color), Width: 2})
	for _, band := range visibleBands {
		b.Band(band.X0, band.X1, band.Color, band.Label)
	}
	return b.Build()
}

// planck evaluates Planck's law for spectral radiance at a wavelength in
// meters and a temperature in kelvin.
func planck(lambdaM, tempK float64) float64 {
	num := 2 * planckH * lightC * lightC / math.Pow(lambdaM, 5)
	return num / (math.Exp(planckH*lightC/(lambdaM*boltzmann*tempK)) - 1)
}

// colorForPeak returns the color of the visible band containing the Wien
// peak wavelength, clamping to the nearest band outside the visible range.
func colorForPeak(peakNm float64) string {
	for _, b := range visibleBands {
		if peakNm >= b.X0 && peakNm < b.X1 {
			return b.Color
		}
	}
	if peakNm < visibleBands[0].X0 {
		return visibleBands[0].Color
	}
	return visibleBands[len(visibleBands)-1].Color
}

// fillFor lightens a line color for use as its area fill.
func fillFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, 0.55).Clamped().Hex()
}
