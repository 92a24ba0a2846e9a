package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

func TestPaletteSwatchesListsEverySlot(t *testing.T) {
	out := PaletteSwatches(params.GardenVerdant.Palette())

	assert.Contains(t, out, "sky")
	assert.Contains(t, out, "ground")
	assert.Contains(t, out, "flora")
	assert.Contains(t, out, "#87ceeb")
	assert.Contains(t, out, "#2e8b57")
	assert.Contains(t, out, "#32cd32")
}
