package chart

// Builder assembles a Spec incrementally. Shorthand methods append traces in
// call order; Styled and Labeled refine the most recently added trace. Build
// applies canvas defaults and validates the result.
type Builder struct {
	spec Spec
	errs []error
}

// NewBuilder starts a spec with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{spec: Spec{Title: title}}
}

// Subtitle sets the subtitle line.
func (b *Builder) Subtitle(s string) *Builder {
	b.spec.Subtitle = s
	return b
}

// Axes sets both axis labels.
func (b *Builder) Axes(xLabel, yLabel string) *Builder {
	b.spec.XLabel = xLabel
	b.spec.YLabel = yLabel
	return b
}

// Canvas sets the canvas size in pixels.
func (b *Builder) Canvas(width, height int) *Builder {
	b.spec.Width = width
	b.spec.Height = height
	return b
}

// Background sets the canvas background color.
func (b *Builder) Background(color string) *Builder {
	b.spec.Background = color
	return b
}

// Trace appends a fully formed trace.
func (b *Builder) Trace(t Trace) *Builder {
	b.spec.Traces = append(b.spec.Traces, t)
	return b
}

// Line appends a polyline trace.
func (b *Builder) Line(name string, x, y []float64) *Builder {
	return b.Trace(Trace{Kind: KindLine, Name: name, X: x, Y: y})
}

// Area appends a filled line trace.
func (b *Builder) Area(name string, x, y []float64) *Builder {
	return b.Trace(Trace{Kind: KindArea, Name: name, X: x, Y: y})
}

// Scatter appends an unconnected marker trace.
func (b *Builder) Scatter(name string, x, y []float64) *Builder {
	return b.Trace(Trace{Kind: KindScatter, Name: name, X: x, Y: y})
}

// Scatter3D appends a marker trace with a Z coordinate.
func (b *Builder) Scatter3D(name string, x, y, z []float64) *Builder {
	return b.Trace(Trace{Kind: KindScatter3D, Name: name, X: x, Y: y, Z: z})
}

// Bar appends a bar trace.
func (b *Builder) Bar(name string, x, y []float64) *Builder {
	return b.Trace(Trace{Kind: KindBar, Name: name, X: x, Y: y})
}

// Segment appends a two-point segment trace.
func (b *Builder) Segment(name string, x0, y0, x1, y1 float64) *Builder {
	return b.Trace(Trace{
		Kind: KindSegment,
		Name: name,
		X:    []float64{x0, x1},
		Y:    []float64{y0, y1},
	})
}

// Styled sets the style of the most recently added trace.
func (b *Builder) Styled(style Style) *Builder {
	if len(b.spec.Traces) == 0 {
		b.errs = append(b.errs, &SpecError{Field: "traces", Reason: "Styled called before any trace"})
		return b
	}
	b.spec.Traces[len(b.spec.Traces)-1].Style = style
	return b
}

// Labeled sets per-point labels on the most recently added trace.
func (b *Builder) Labeled(labels ...string) *Builder {
	if len(b.spec.Traces) == 0 {
		b.errs = append(b.errs, &SpecError{Field: "traces", Reason: "Labeled called before any trace"})
		return b
	}
	b.spec.Traces[len(b.spec.Traces)-1].Labels = labels
	return b
}

// Band appends a decorative x-axis interval.
func (b *Builder) Band(x0, x1 float64, color, label string) *Builder {
	b.spec.Bands = append(b.spec.Bands, Band{X0: x0, X1: x1, Color: color, Label: label})
	return b
}

// Build applies canvas defaults, validates the assembled spec and returns it.
// Any builder misuse recorded along the way is reported here as well.
func (b *Builder) Build() (Spec, error) {
	if b.spec.Width == 0 {
		b.spec.Width = DefaultWidth
	}
	if b.spec.Height == 0 {
		b.spec.Height = DefaultHeight
	}

	errs := b.errs
	if err := b.spec.Validate(); err != nil {
		if both, ok := err.(*AggregateError); ok {
			errs = append(errs, both.Errors...)
		} else {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Spec{}, &AggregateError{Errors: errs}
	}
	return b.spec, nil
}
