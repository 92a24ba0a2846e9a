package figure

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/ports"
)

func TestRenderer_Contract(t *testing.T) {
	ports.RunRendererContract(t, New())
}

func TestRenderer_Document(t *testing.T) {
	spec := chart.Spec{
		Title:    "Blackbody Emission",
		Subtitle: "T = 5800 K",
		XLabel:   "Wavelength (nm)",
		YLabel:   "Relative Intensity (%)",
		Width:    640,
		Height:   360,
		Traces: []chart.Trace{
			{
				Kind:  chart.KindArea,
				Name:  "spectral radiance",
				X:     []float64{300, 550, 800},
				Y:     []float64{10, 100, 40},
				Style: chart.Style{Color: "#00a550", FillColor: "#a8d5b5", Width: 2},
			},
		},
		Bands: []chart.Band{
			{X0: 380, X1: 450, Color: "#7f00ff", Label: "Violet"},
		},
	}

	out, err := New().Render(&spec)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	want := map[string]any{
		"data": []any{
			map[string]any{
				"type":      "scatter",
				"mode":      "lines",
				"fill":      "tozeroy",
				"fillcolor": "#a8d5b5",
				"name":      "spectral radiance",
				"x":         []any{300.0, 550.0, 800.0},
				"y":         []any{10.0, 100.0, 40.0},
				"line":      map[string]any{"color": "#00a550", "width": 2.0},
			},
		},
		"layout": map[string]any{
			"width":  640.0,
			"height": 360.0,
			"title": map[string]any{
				"text":     "Blackbody Emission",
				"subtitle": map[string]any{"text": "T = 5800 K"},
			},
			"xaxis": map[string]any{"title": map[string]any{"text": "Wavelength (nm)"}},
			"yaxis": map[string]any{"title": map[string]any{"text": "Relative Intensity (%)"}},
			"shapes": []any{
				map[string]any{
					"type":      "rect",
					"xref":      "x",
					"yref":      "paper",
					"x0":        380.0,
					"x1":        450.0,
					"y0":        0.0,
					"y1":        1.0,
					"fillcolor": "#7f00ff",
					"opacity":   0.15,
					"line":      map[string]any{"width": 0.0},
					"label":     map[string]any{"text": "Violet"},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("figure document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_BarUsesCategoryAxis(t *testing.T) {
	spec := chart.Spec{
		Title:  "Convergent Evolution",
		Width:  640,
		Height: 360,
		Traces: []chart.Trace{
			{
				Kind:   chart.KindBar,
				Name:   "independent origins",
				X:      []float64{0, 1},
				Y:      []float64{40, 4},
				Labels: []string{"Eyes", "Powered flight"},
				Style:  chart.Style{Color: "#2e8b57"},
			},
		},
	}

	out, err := New().Render(&spec)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	data := got["data"].([]any)
	bar := data[0].(map[string]any)
	assert.Equal(t, "bar", bar["type"])
	assert.Equal(t, []any{"Eyes", "Powered flight"}, bar["x"])
}

func TestRenderer_SegmentWithZBecomesScatter3D(t *testing.T) {
	spec := chart.Spec{
		Title:  "Bond",
		Width:  100,
		Height: 100,
		Traces: []chart.Trace{
			{
				Kind: chart.KindSegment,
				Name: "bond-1",
				X:    []float64{0, 1},
				Y:    []float64{0, 1},
				Z:    []float64{0, 0.5},
			},
		},
	}

	out, err := New().Render(&spec)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	seg := got["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "scatter3d", seg["type"])
	assert.Equal(t, []any{0.0, 0.5}, seg["z"])
}

func TestRenderer_CompactMode(t *testing.T) {
	spec := chart.Spec{
		Title:  "Compact",
		Width:  100,
		Height: 100,
		Traces: []chart.Trace{
			{Kind: chart.KindLine, Name: "l", X: []float64{0, 1}, Y: []float64{0, 1}},
		},
	}

	indented, err := New().Render(&spec)
	require.NoError(t, err)
	compact, err := (&Renderer{}).Render(&spec)
	require.NoError(t, err)

	assert.Less(t, len(compact), len(indented))
	assert.JSONEq(t, string(indented), string(compact))
}
