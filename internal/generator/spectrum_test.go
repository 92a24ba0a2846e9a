package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

func TestSpectrum_Shape(t *testing.T) {
	spec, err := Spectrum(SpectrumParams{Temperature: 5800})
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	require.Len(t, spec.Traces, 1)
	radiance := spec.Traces[0]
	assert.Equal(t, chart.KindArea, radiance.Kind)
	assert.Equal(t, spectrumSamples, radiance.Len())
	assert.InDelta(t, spectrumLoNm, radiance.X[0], 1e-9)
	assert.InDelta(t, spectrumHiNm, radiance.X[len(radiance.X)-1], 1e-9)

	// Normalization: the peak sample is exactly 100, nothing exceeds it.
	peak := 0.0
	for _, y := range radiance.Y {
		require.False(t, math.IsNaN(y))
		if y > peak {
			peak = y
		}
	}
	assert.Equal(t, 100.0, peak)
}

func TestSpectrum_BandsAlwaysAttached(t *testing.T) {
	for _, temp := range []float64{3200, 5800, 15000} {
		spec, err := Spectrum(SpectrumParams{Temperature: temp})
		require.NoError(t, err)

		require.Len(t, spec.Bands, 6, "T=%v", temp)
		assert.Equal(t, "Violet", spec.Bands[0].Label)
		assert.Equal(t, "Red", spec.Bands[5].Label)
		assert.InDelta(t, 380.0, spec.Bands[0].X0, 1e-9)
		assert.InDelta(t, 750.0, spec.Bands[5].X1, 1e-9)
	}
}

func TestSpectrum_WienOrdering(t *testing.T) {
	// Hotter stars peak at shorter wavelengths. Within the sampled window
	// the red dwarf's curve is still climbing at 800 nm, the sun-like
	// star's peaks near 500 nm and the blue giant's is already falling.
	peakAt := func(temp float64) float64 {
		spec, err := Spectrum(SpectrumParams{Temperature: temp})
		require.NoError(t, err)
		tr := spec.Traces[0]
		best := 0
		for i, y := range tr.Y {
			if y > tr.Y[best] {
				best = i
			}
		}
		return tr.X[best]
	}

	red := peakAt(starTable[params.StarRedDwarf].TempK)
	sun := peakAt(starTable[params.StarSunLike].TempK)
	blue := peakAt(starTable[params.StarBlueGiant].TempK)

	assert.Greater(t, red, sun)
	assert.Greater(t, sun, blue)
	assert.InDelta(t, wienB/5800, sun, 5, "sun-like peak should sit at the Wien wavelength")
}

func TestSpectrum_Idempotent(t *testing.T) {
	a, err := Spectrum(SpectrumParams{Temperature: 4400, Color: "#aabbcc"})
	require.NoError(t, err)
	b, err := Spectrum(SpectrumParams{Temperature: 4400, Color: "#aabbcc"})
	require.NoError(t, err)

	assert.Equal(t, a, b, "spectrum generation is deterministic")
}

func TestSpectrum_InvalidTemperature(t *testing.T) {
	for _, temp := range []float64{0, -273.15, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Spectrum(SpectrumParams{Temperature: temp})
		assert.ErrorIs(t, err, params.ErrInvalidParameter, "T=%v", temp)
	}
}

func TestSpectrum_TooColdToSample(t *testing.T) {
	// Valid physics, but every sample in the window underflows to zero.
	_, err := Spectrum(SpectrumParams{Temperature: 10})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)
}

func TestSpectrum_ColorOverride(t *testing.T) {
	spec, err := Spectrum(SpectrumParams{Temperature: 5800, Color: "#123456"})
	require.NoError(t, err)
	assert.Equal(t, "#123456", spec.Traces[0].Style.Color)

	_, err = Spectrum(SpectrumParams{Temperature: 5800, Color: "bright red"})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)
}

func TestSpectrum_DefaultColorFollowsPeak(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{3200, "#d22b2b"},  // peak at 906 nm, clamped to the red band
		{5800, "#00a550"},  // peak at 500 nm, green band
		{15000, "#7f00ff"}, // peak at 193 nm, clamped to the violet band
	}

	for _, tt := range tests {
		spec, err := Spectrum(SpectrumParams{Temperature: tt.temp})
		require.NoError(t, err)
		assert.Equal(t, tt.want, spec.Traces[0].Style.Color, "T=%v", tt.temp)
	}
}
