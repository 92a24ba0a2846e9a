package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

func TestBuild_DispatchesEveryGenerator(t *testing.T) {
	cases := map[string]map[string]any{
		NameLandscape:   {"garden": "verdant", "gravity": "low", "seed": 4},
		NameMolecule:    {"kind": "carbon"},
		NameSpectrum:    {"temperature": 5800},
		NameBodyPlan:    {"gravity": 1.5},
		NameReachLeap:   {"gravity": 0.8},
		NameThermal:     {"kind": "silicon"},
		NameStarProfile: {"class": "red-dwarf"},
		NameConvergent:  nil,
		NameHabitat:     nil,
	}
	require.Len(t, cases, len(Names()), "every registered generator needs a dispatch case")

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			spec, err := Build(name, raw)
			require.NoError(t, err)
			assert.NoError(t, spec.Validate())
			assert.NotEmpty(t, spec.Title)
		})
	}
}

func TestBuild_UnknownGenerator(t *testing.T) {
	_, err := Build("wormhole", nil)
	assert.ErrorIs(t, err, params.ErrInvalidParameter)

	var pErr *params.ParameterError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "generator", pErr.Param)
}

func TestBuild_Known(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("wormhole"))
	assert.False(t, Known(""))
}

func TestBuild_DecodeFailure(t *testing.T) {
	_, err := Build(NameLandscape, map[string]any{"garden": 42})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)
}

func TestBuild_IntTemperature(t *testing.T) {
	// YAML frontmatter decodes whole numbers as ints; the dispatcher must
	// still land them in float64 parameters.
	spec, err := Build(NameSpectrum, map[string]any{"temperature": 5800})
	require.NoError(t, err)
	assert.Contains(t, spec.Subtitle, "5800")
}

func TestBuild_NestedPaletteMap(t *testing.T) {
	spec, err := Build(NameLandscape, map[string]any{
		"palette": map[string]any{
			"sky":    "#101020",
			"ground": "#202030",
			"flora":  "#30ff90",
		},
		"gravity": "high",
	})
	require.NoError(t, err)
	assert.Equal(t, "#101020", spec.Traces[0].Style.FillColor)
}

func TestBuild_StrictParamsPropagate(t *testing.T) {
	_, err := Build(NameMolecule, map[string]any{"kind": "arsenic"})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)

	_, err = Build(NameSpectrum, map[string]any{"temperature": -10})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)

	_, err = Build(NameStarProfile, map[string]any{"class": "pulsar"})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)
}

func TestLinspace(t *testing.T) {
	xs := linspace(0, 100, 5)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, xs)
}

func TestInterpolateAt(t *testing.T) {
	xs := []float64{0, 10, 20}
	ys := []float64{0, 100, 0}

	mid, err := interpolateAt(xs, ys, 5)
	require.NoError(t, err)
	assert.InDelta(t, 50, mid, 1e-9)

	exact, err := interpolateAt(xs, ys, 10)
	require.NoError(t, err)
	assert.InDelta(t, 100, exact, 1e-9)

	_, err = interpolateAt(xs, ys, 25)
	assert.Error(t, err, "never extrapolates")

	_, err = interpolateAt(xs, ys, -1)
	assert.Error(t, err)
}
