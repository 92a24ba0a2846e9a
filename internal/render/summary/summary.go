// Package summary writes a plain-text synopsis of a chart spec: the
// titles, the axes, and one line per trace and band. It is the fallback
// surface for terminals that cannot show images.
package summary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
)

// Renderer produces the text synopsis.
type Renderer struct{}

// New creates a summary renderer.
func New() *Renderer { return &Renderer{} }

// Format returns "txt".
func (r *Renderer) Format() string { return "txt" }

// Render writes the synopsis.
func (r *Renderer) Render(spec *chart.Spec) ([]byte, error) {
	if spec == nil {
		return nil, errors.New("summary: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("summary: invalid spec: %w", err)
	}

	var b strings.Builder
	fmt.Fprintln(&b, spec.Title)
	fmt.Fprintln(&b, strings.Repeat("=", utf8.RuneCountInString(spec.Title)))
	if spec.Subtitle != "" {
		fmt.Fprintln(&b, spec.Subtitle)
	}
	b.WriteString("\n")

	if spec.XLabel != "" || spec.YLabel != "" {
		fmt.Fprintf(&b, "x: %s    y: %s\n\n", labelOrDash(spec.XLabel), labelOrDash(spec.YLabel))
	}

	fmt.Fprintf(&b, "traces (%d):\n", len(spec.Traces))
	for i, t := range spec.Traces {
		lo, hi := bounds(t.Y)
		fmt.Fprintf(&b, "  %2d. %-9s %-26s %4d pts  y in [%s, %s]\n",
			i+1, t.Kind, t.Name, t.Len(), formatNum(lo), formatNum(hi))
	}

	if len(spec.Bands) > 0 {
		fmt.Fprintf(&b, "bands (%d):\n", len(spec.Bands))
		for _, band := range spec.Bands {
			fmt.Fprintf(&b, "  - %-12s x in [%s, %s]\n",
				band.Label, formatNum(band.X0), formatNum(band.X1))
		}
	}

	return []byte(b.String()), nil
}

func labelOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func bounds(ys []float64) (lo, hi float64) {
	lo, hi = ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
