package chartimg

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devanik21/Life-Beyond-sub000/internal/generator"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/ports"
)

func TestRendererContract(t *testing.T) {
	ports.RunRendererContract(t, New())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "png", New().Format())
}

func TestRenderProducesDecodablePNG(t *testing.T) {
	spec, err := generator.Build(generator.NameSpectrum, map[string]any{"temperature": 5800.0})
	require.NoError(t, err)

	data, err := New().Render(&spec)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "missing PNG signature")

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, spec.Width, img.Bounds().Dx())
	assert.Equal(t, spec.Height, img.Bounds().Dy())
}

func TestRenderEveryGenerator(t *testing.T) {
	args := map[string]map[string]any{
		generator.NameLandscape:   {"garden": "verdant", "seed": int64(7)},
		generator.NameMolecule:    {"kind": "silicon"},
		generator.NameSpectrum:    {"temperature": 3200.0},
		generator.NameBodyPlan:    {"gravity": 1.0},
		generator.NameReachLeap:   {"gravity": 2.5},
		generator.NameStarProfile: {"class": "red-dwarf"},
	}

	r := New()
	for _, name := range generator.Names() {
		t.Run(name, func(t *testing.T) {
			spec, err := generator.Build(name, args[name])
			require.NoError(t, err)

			data, err := r.Render(&spec)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestRenderRejectsUnparsableBandColor(t *testing.T) {
	spec, err := chart.NewBuilder("Banded").
		Line("signal", []float64{0, 1}, []float64{0, 1}).
		Band(0, 0.5, "chartreuse", "zone").
		Build()
	require.NoError(t, err)

	_, err = New().Render(&spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a hex color")
}
