package chart

import "fmt"

// Kind identifies how a trace's coordinates should be drawn.
type Kind string

const (
	// KindLine draws a connected polyline.
	KindLine Kind = "line"
	// KindArea draws a line filled down to the x axis.
	KindArea Kind = "area"
	// KindScatter draws unconnected markers.
	KindScatter Kind = "scatter"
	// KindScatter3D draws markers with a Z coordinate (hosts without a
	// third axis project it away).
	KindScatter3D Kind = "scatter3d"
	// KindSegment draws a straight segment between exactly two points.
	// Z is optional; plant stems use 2D segments, molecular bonds 3D ones.
	KindSegment Kind = "segment"
	// KindBar draws one bar per coordinate pair.
	KindBar Kind = "bar"
)

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLine, KindArea, KindScatter, KindScatter3D, KindSegment, KindBar:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unsupported trace kind: %s", s)
	}
}

// Is3D reports whether the kind carries a Z coordinate.
func (k Kind) Is3D() bool {
	return k == KindScatter3D
}

// Style carries the presentation hints a generator attaches to a trace.
// Colors are hex strings ("#RRGGBB"); hosts translate them to whatever
// their drawing backend needs.
type Style struct {
	Color      string  `json:"color,omitempty"`
	FillColor  string  `json:"fill_color,omitempty"`
	Width      float64 `json:"width,omitempty"`
	MarkerSize float64 `json:"marker_size,omitempty"`
}

// Trace is one drawable series within a Spec.
//
// X and Y must be non-empty and of equal length. Z and Labels are optional;
// when present they must match the length of X. Segment traces carry exactly
// two points.
type Trace struct {
	Kind   Kind      `json:"kind"`
	Name   string    `json:"name"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Style  Style     `json:"style,omitempty"`
}

// Len returns the number of coordinate points in the trace.
func (t *Trace) Len() int { return len(t.X) }

// Band is a decorative interval annotation on the x axis, such as the
// visible-color regions overlaid on an emission spectrum.
type Band struct {
	X0    float64 `json:"x0"`
	X1    float64 `json:"x1"`
	Color string  `json:"color"`
	Label string  `json:"label,omitempty"`
}

// Spec is a complete chart description: ordered traces plus layout metadata.
// Trace order is meaningful (hosts draw index 0 first, so later traces paint
// over earlier ones).
type Spec struct {
	Title      string  `json:"title"`
	Subtitle   string  `json:"subtitle,omitempty"`
	XLabel     string  `json:"x_label,omitempty"`
	YLabel     string  `json:"y_label,omitempty"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Background string  `json:"background,omitempty"`
	Traces     []Trace `json:"traces"`
	Bands      []Band  `json:"bands,omitempty"`
}

// Default canvas dimensions applied by the builder when none are set.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)
