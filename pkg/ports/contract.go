package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
)

// RunRendererContract runs a suite of tests to verify that a Renderer
// implementation adheres to the defined interface contract.
func RunRendererContract(t *testing.T, r Renderer) {
	t.Run("Format", func(t *testing.T) {
		require.NotEmpty(t, r.Format(), "Format must identify the output")
	})

	t.Run("Render Valid Spec", func(t *testing.T) {
		spec := contractSpec()
		out, err := r.Render(&spec)
		require.NoError(t, err, "a valid spec must render")
		assert.NotEmpty(t, out, "rendering must produce output bytes")
	})

	t.Run("Render Is Repeatable", func(t *testing.T) {
		spec := contractSpec()
		first, err := r.Render(&spec)
		require.NoError(t, err)
		second, err := r.Render(&spec)
		require.NoError(t, err)
		assert.Equal(t, first, second, "rendering the same spec twice must produce identical bytes")
	})

	t.Run("Reject Nil Spec", func(t *testing.T) {
		_, err := r.Render(nil)
		assert.Error(t, err, "nil specs must be rejected")
	})

	t.Run("Reject Invalid Spec", func(t *testing.T) {
		broken := contractSpec()
		broken.Traces[0].Y = broken.Traces[0].Y[:1] // length mismatch
		_, err := r.Render(&broken)
		assert.Error(t, err, "structurally invalid specs must be rejected")
	})
}

// contractSpec builds a small spec covering every trace kind a renderer
// must cope with.
func contractSpec() chart.Spec {
	return chart.Spec{
		Title:  "Contract Fixture",
		XLabel: "x",
		YLabel: "y",
		Width:  320,
		Height: 240,
		Traces: []chart.Trace{
			{Kind: chart.KindArea, Name: "area", X: []float64{0, 1, 2}, Y: []float64{1, 3, 2}},
			{Kind: chart.KindLine, Name: "line", X: []float64{0, 1, 2}, Y: []float64{2, 1, 3}},
			{Kind: chart.KindScatter, Name: "dots", X: []float64{0.5, 1.5}, Y: []float64{2.5, 1.5}},
			{Kind: chart.KindScatter3D, Name: "atoms", X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1},
				Style: chart.Style{MarkerSize: 12}},
			{Kind: chart.KindSegment, Name: "stem", X: []float64{1, 1}, Y: []float64{0, 2}},
			{Kind: chart.KindBar, Name: "bars", X: []float64{0, 1, 2}, Y: []float64{1, 2, 1},
				Labels: []string{"a", "b", "c"}},
		},
		Bands: []chart.Band{{X0: 0.25, X1: 0.75, Color: "#ffcc00", Label: "band"}},
	}
}
