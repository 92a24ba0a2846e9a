// Package chartimg rasterizes chart specs to PNG via go-chart.
//
// The mapping is necessarily lossy: 3D traces are projected onto the canvas
// with a fixed oblique projection, bar traces become grouped columns, and
// bands become translucent fills behind the data. Everything a generator
// emits renders without configuration.
package chartimg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
)

// Projection and layout constants. projZX/projZY define the oblique
// projection used for 3D traces: screen x = x + 0.4z, screen y = y + 0.3z.
const (
	projZX = 0.4
	projZY = 0.3

	barGroupOffset  = 0.22
	barStrokeWidth  = 18
	bandAlpha       = 48
	defaultDotWidth = 5
	legendMaxTraces = 4
)

// Renderer draws chart specs as PNG images.
type Renderer struct{}

// New creates a PNG renderer.
func New() *Renderer { return &Renderer{} }

// Format returns "png".
func (r *Renderer) Format() string { return "png" }

// Render rasterizes the spec.
func (r *Renderer) Render(spec *chart.Spec) ([]byte, error) {
	if spec == nil {
		return nil, errors.New("chartimg: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("chartimg: invalid spec: %w", err)
	}

	bands, err := bandSeries(spec)
	if err != nil {
		return nil, fmt.Errorf("chartimg: %w", err)
	}
	series, ticks := dataSeries(spec)
	// Bands paint first so the data draws over them.
	series = append(bands, series...)

	title := spec.Title
	if spec.Subtitle != "" {
		title = fmt.Sprintf("%s (%s)", spec.Title, spec.Subtitle)
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      spec.Width,
		Height:     spec.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      gochart.XAxis{Name: spec.XLabel},
		YAxis:      gochart.YAxis{Name: spec.YLabel},
		Series:     series,
	}
	if c, ok := toColor(spec.Background, 255); ok {
		ch.Canvas = gochart.Style{FillColor: c}
	}
	if len(ticks) > 0 {
		ch.XAxis.Ticks = ticks
		ch.XAxis.Range = &gochart.ContinuousRange{
			Min: ticks[0].Value - 0.5,
			Max: ticks[len(ticks)-1].Value + 0.5,
		}
	}
	if len(spec.Traces) <= legendMaxTraces {
		ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chartimg: render: %w", err)
	}
	return buf.Bytes(), nil
}

// dataSeries converts the spec's traces. Labeled bar traces also yield the
// category ticks for the x axis.
func dataSeries(spec *chart.Spec) ([]gochart.Series, []gochart.Tick) {
	barCount := 0
	for i := range spec.Traces {
		if spec.Traces[i].Kind == chart.KindBar {
			barCount++
		}
	}

	var (
		series   []gochart.Series
		ticks    []gochart.Tick
		barIndex int
	)
	for i := range spec.Traces {
		t := &spec.Traces[i]
		switch t.Kind {
		case chart.KindBar:
			series = append(series, columnSeries(t, groupOffset(barIndex, barCount))...)
			if ticks == nil && t.Labels != nil {
				for j := range t.X {
					ticks = append(ticks, gochart.Tick{Value: t.X[j], Label: t.Labels[j]})
				}
			}
			barIndex++
		case chart.KindSegment:
			series = append(series, segmentSeries(t))
		case chart.KindScatter, chart.KindScatter3D:
			series = append(series, markerSeries(t))
		default:
			series = append(series, lineSeries(t))
		}
	}
	return series, ticks
}

// columnSeries draws one bar trace as a set of fat vertical strokes rising
// from zero. Only the first column carries the trace name, so the legend
// lists the trace once.
func columnSeries(t *chart.Trace, offset float64) []gochart.Series {
	style := gochart.Style{StrokeWidth: barStrokeWidth}
	if c, ok := toColor(t.Style.Color, 255); ok {
		style.StrokeColor = c
	}

	out := make([]gochart.Series, 0, t.Len())
	for i := range t.X {
		name := ""
		if i == 0 {
			name = t.Name
		}
		x := t.X[i] + offset
		out = append(out, gochart.ContinuousSeries{
			Name:    name,
			XValues: []float64{x, x},
			YValues: []float64{0, t.Y[i]},
			Style:   style,
		})
	}
	return out
}

// groupOffset spreads grouped bar traces around each category position.
func groupOffset(barIndex, barCount int) float64 {
	if barCount <= 1 {
		return 0
	}
	return (float64(barIndex) - float64(barCount-1)/2) * barGroupOffset
}

func lineSeries(t *chart.Trace) gochart.Series {
	style := gochart.Style{StrokeWidth: widthOr(t.Style.Width, 2)}
	if c, ok := toColor(t.Style.Color, 255); ok {
		style.StrokeColor = c
	}
	if t.Kind == chart.KindArea {
		switch {
		case t.Style.FillColor != "":
			if c, ok := toColor(t.Style.FillColor, 255); ok {
				style.FillColor = c
			}
		case t.Style.Color != "":
			if c, ok := toColor(t.Style.Color, 80); ok {
				style.FillColor = c
			}
		}
	}
	return gochart.ContinuousSeries{Name: t.Name, XValues: t.X, YValues: t.Y, Style: style}
}

func markerSeries(t *chart.Trace) gochart.Series {
	xs, ys := t.X, t.Y
	if t.Kind.Is3D() {
		xs, ys = project(t)
	}
	// go-chart needs at least two values per series; a lone marker is
	// drawn twice in place.
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0]}
		ys = []float64{ys[0], ys[0]}
	}

	dot := defaultDotWidth
	if t.Style.MarkerSize > 0 {
		dot = int(t.Style.MarkerSize / 2)
	}
	style := gochart.Style{StrokeWidth: gochart.Disabled, DotWidth: float64(dot)}
	if c, ok := toColor(t.Style.Color, 255); ok {
		style.DotColor = c
	}
	return gochart.ContinuousSeries{Name: t.Name, XValues: xs, YValues: ys, Style: style}
}

func segmentSeries(t *chart.Trace) gochart.Series {
	xs, ys := t.X, t.Y
	if t.Z != nil {
		xs, ys = project(t)
	}
	style := gochart.Style{StrokeWidth: widthOr(t.Style.Width, 3)}
	if c, ok := toColor(t.Style.Color, 255); ok {
		style.StrokeColor = c
	}
	return gochart.ContinuousSeries{Name: t.Name, XValues: xs, YValues: ys, Style: style}
}

// bandSeries converts decorative bands into translucent area fills.
func bandSeries(spec *chart.Spec) ([]gochart.Series, error) {
	if len(spec.Bands) == 0 {
		return nil, nil
	}

	top := 1.0
	for i := range spec.Traces {
		for _, y := range spec.Traces[i].Y {
			if y > top {
				top = y
			}
		}
	}

	out := make([]gochart.Series, 0, len(spec.Bands))
	for _, b := range spec.Bands {
		c, ok := toColor(b.Color, bandAlpha)
		if !ok {
			return nil, fmt.Errorf("band %q color %q is not a hex color", b.Label, b.Color)
		}
		out = append(out, gochart.ContinuousSeries{
			XValues: []float64{b.X0, b.X1},
			YValues: []float64{top, top},
			Style:   gochart.Style{StrokeWidth: gochart.Disabled, FillColor: c},
		})
	}
	return out, nil
}

// project maps 3D coordinates onto the canvas with the package's oblique
// projection.
func project(t *chart.Trace) ([]float64, []float64) {
	xs := make([]float64, t.Len())
	ys := make([]float64, t.Len())
	for i := range t.X {
		xs[i] = t.X[i] + projZX*t.Z[i]
		ys[i] = t.Y[i] + projZY*t.Z[i]
	}
	return xs, ys
}

func widthOr(w, fallback float64) float64 {
	if w > 0 {
		return w
	}
	return fallback
}

func toColor(hex string, alpha uint8) (drawing.Color, bool) {
	if hex == "" {
		return drawing.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return drawing.Color{}, false
	}
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: alpha}, true
}
