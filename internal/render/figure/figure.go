// Package figure encodes chart specs as Plotly-flavored figure JSON: a
// {"data": [...], "layout": {...}} document that plotting frontends and
// notebooks can ingest directly.
//
// The encoding is lossless for everything a Spec carries. Keys inside each
// object marshal in sorted order, so the same spec always produces the same
// bytes.
package figure

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
)

// Renderer encodes specs as figure JSON. The zero value emits compact
// output; New returns an indenting renderer suitable for files a person
// will open.
type Renderer struct {
	Indent bool
}

// New creates an indenting figure JSON renderer.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Format returns "json".
func (r *Renderer) Format() string { return "json" }

// Render encodes the spec as a figure document.
func (r *Renderer) Render(spec *chart.Spec) ([]byte, error) {
	if spec == nil {
		return nil, errors.New("figure: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("figure: invalid spec: %w", err)
	}

	doc := document{Layout: layoutDict(spec)}
	for i := range spec.Traces {
		doc.Data = append(doc.Data, traceDict(&spec.Traces[i]))
	}

	if r.Indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

type document struct {
	Data   []map[string]any `json:"data"`
	Layout map[string]any   `json:"layout"`
}

// traceDict converts one trace to its figure representation.
func traceDict(t *chart.Trace) map[string]any {
	d := map[string]any{"name": t.Name, "x": t.X, "y": t.Y}

	switch t.Kind {
	case chart.KindLine:
		d["type"] = "scatter"
		d["mode"] = "lines"
		putDict(d, "line", strokeDict(t.Style))

	case chart.KindArea:
		d["type"] = "scatter"
		d["mode"] = "lines"
		d["fill"] = "tozeroy"
		putDict(d, "line", strokeDict(t.Style))
		if t.Style.FillColor != "" {
			d["fillcolor"] = t.Style.FillColor
		}

	case chart.KindScatter:
		d["type"] = "scatter"
		d["mode"] = "markers"
		putDict(d, "marker", markerDict(t.Style))
		if t.Labels != nil {
			d["mode"] = "markers+text"
			d["text"] = t.Labels
		}

	case chart.KindScatter3D:
		d["type"] = "scatter3d"
		d["mode"] = "markers"
		d["z"] = t.Z
		putDict(d, "marker", markerDict(t.Style))
		if t.Labels != nil {
			d["mode"] = "markers+text"
			d["text"] = t.Labels
		}

	case chart.KindSegment:
		d["type"] = "scatter"
		if t.Z != nil {
			d["type"] = "scatter3d"
			d["z"] = t.Z
		}
		d["mode"] = "lines"
		putDict(d, "line", strokeDict(t.Style))

	case chart.KindBar:
		d["type"] = "bar"
		if t.Labels != nil {
			// Labeled bars plot against a category axis.
			d["x"] = t.Labels
		}
		if t.Style.Color != "" {
			d["marker"] = map[string]any{"color": t.Style.Color}
		}
	}

	return d
}

// layoutDict converts the spec's layout metadata.
func layoutDict(spec *chart.Spec) map[string]any {
	layout := map[string]any{
		"width":  spec.Width,
		"height": spec.Height,
	}

	title := map[string]any{"text": spec.Title}
	if spec.Subtitle != "" {
		title["subtitle"] = map[string]any{"text": spec.Subtitle}
	}
	layout["title"] = title

	if spec.XLabel != "" {
		layout["xaxis"] = map[string]any{"title": map[string]any{"text": spec.XLabel}}
	}
	if spec.YLabel != "" {
		layout["yaxis"] = map[string]any{"title": map[string]any{"text": spec.YLabel}}
	}
	if spec.Background != "" {
		layout["plot_bgcolor"] = spec.Background
	}

	if len(spec.Bands) > 0 {
		shapes := make([]map[string]any, 0, len(spec.Bands))
		for _, b := range spec.Bands {
			shape := map[string]any{
				"type":      "rect",
				"xref":      "x",
				"yref":      "paper",
				"x0":        b.X0,
				"x1":        b.X1,
				"y0":        0,
				"y1":        1,
				"fillcolor": b.Color,
				"opacity":   0.15,
				"line":      map[string]any{"width": 0},
			}
			if b.Label != "" {
				shape["label"] = map[string]any{"text": b.Label}
			}
			shapes = append(shapes, shape)
		}
		layout["shapes"] = shapes
	}

	return layout
}

func strokeDict(s chart.Style) map[string]any {
	d := map[string]any{}
	if s.Color != "" {
		d["color"] = s.Color
	}
	if s.Width > 0 {
		d["width"] = s.Width
	}
	return d
}

func markerDict(s chart.Style) map[string]any {
	d := map[string]any{}
	if s.Color != "" {
		d["color"] = s.Color
	}
	if s.MarkerSize > 0 {
		d["size"] = s.MarkerSize
	}
	return d
}

// putDict sets key only when the nested dict carries something.
func putDict(d map[string]any, key string, nested map[string]any) {
	if len(nested) > 0 {
		d[key] = nested
	}
}
