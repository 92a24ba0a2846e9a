package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

// PaletteSwatches renders a garden palette as labeled color blocks. On
// terminals without color support the hex codes still identify each slot.
func PaletteSwatches(p params.Palette) string {
	rows := []struct {
		slot string
		hex  string
	}{
		{"sky", p.Sky},
		{"ground", p.Ground},
		{"flora", p.Flora},
	}

	prof := termenv.ColorProfile()
	var b strings.Builder
	for _, row := range rows {
		block := termenv.String("██████").Foreground(prof.Color(row.hex))
		fmt.Fprintf(&b, "  %-7s %-8s %s\n", row.slot, row.hex, block)
	}
	return b.String()
}
