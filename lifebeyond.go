package lifebeyond

import (
	"fmt"
	"log/slog"

	"github.com/Devanik21/Life-Beyond-sub000/internal/catalog"
	"github.com/Devanik21/Life-Beyond-sub000/internal/generator"
	"github.com/Devanik21/Life-Beyond-sub000/internal/logging"
	"github.com/Devanik21/Life-Beyond-sub000/internal/render/chartimg"
	"github.com/Devanik21/Life-Beyond-sub000/internal/render/figure"
	"github.com/Devanik21/Life-Beyond-sub000/internal/render/summary"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/ports"
)

// Museum is the high-level entry point for the Life Beyond library.
// It wraps the internal catalog and chart generators and provides a
// simplified API for consumers.
type Museum struct {
	catalog  *catalog.Catalog
	renderer ports.Renderer
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Museum.
type Option func(*Museum)

// WithRenderer injects a custom chart renderer, bypassing the default
// figure JSON surface.
func WithRenderer(r ports.Renderer) Option {
	return func(m *Museum) {
		m.renderer = r
	}
}

// WithLogger sets a custom structured logger for the museum.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Museum) {
		m.logger = logger
	}
}

// Open assembles and validates the museum. The embedded wings always hang;
// extraWingsDir, when non-empty, contributes additional wing files in the
// same format.
func Open(extraWingsDir string, opts ...Option) (*Museum, error) {
	m := &Museum{}

	for _, opt := range opts {
		opt(m)
	}

	// Ensure defaults so a zero-config Open still works end to end.
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if m.renderer == nil {
		m.renderer = figure.New()
	}

	cat, err := catalog.Load(extraWingsDir)
	if err != nil {
		return nil, fmt.Errorf("open museum: %w", err)
	}
	m.catalog = cat

	m.logger.Debug("museum open", "wings", len(cat.Wings()))
	return m, nil
}

// Wings returns every wing in tour order.
func (m *Museum) Wings() []exhibit.Wing {
	return m.catalog.Wings()
}

// Wing returns the wing with the given id.
func (m *Museum) Wing(id string) (exhibit.Wing, error) {
	w, ok := m.catalog.Wing(id)
	if !ok {
		return exhibit.Wing{}, fmt.Errorf("unknown wing %q", id)
	}
	return w, nil
}

// Chart returns a chart descriptor by its museum-unique id, together with
// the wing that hangs it.
func (m *Museum) Chart(id string) (exhibit.Wing, exhibit.ChartRef, error) {
	w, ref, ok := m.catalog.Chart(id)
	if !ok {
		return exhibit.Wing{}, exhibit.ChartRef{}, fmt.Errorf("unknown chart %q", id)
	}
	return w, ref, nil
}

// BuildChart builds the chart with the given id, overlaying overrides on
// the catalog's default parameters.
func (m *Museum) BuildChart(id string, overrides map[string]any) (chart.Spec, error) {
	_, ref, ok := m.catalog.Chart(id)
	if !ok {
		return chart.Spec{}, fmt.Errorf("unknown chart %q", id)
	}

	params := make(map[string]any, len(ref.Params)+len(overrides))
	for k, v := range ref.Params {
		params[k] = v
	}
	for k, v := range overrides {
		params[k] = v
	}

	m.logger.Debug("building chart", "chart", id, "generator", ref.Generator)
	spec, err := generator.Build(ref.Generator, params)
	if err != nil {
		return chart.Spec{}, fmt.Errorf("chart %q: %w", id, err)
	}
	return spec, nil
}

// Generate runs a generator directly by name, bypassing the catalog. The
// raw params map is decoded by the generator itself.
func (m *Museum) Generate(name string, params map[string]any) (chart.Spec, error) {
	m.logger.Debug("running generator", "generator", name)
	return generator.Build(name, params)
}

// Tree returns the museum's tree of life.
func (m *Museum) Tree() exhibit.Clade {
	return m.catalog.Tree()
}

// Renderer returns the museum's configured render surface.
func (m *Museum) Renderer() ports.Renderer {
	return m.renderer
}

// Generators lists every registered generator name in stable order.
func Generators() []string {
	return generator.Names()
}

// RendererFor returns a shipped renderer by format name: "json" for the
// figure document, "png" for the raster surface, "txt" for the terminal
// summary.
func RendererFor(format string) (ports.Renderer, error) {
	switch format {
	case "json":
		return figure.New(), nil
	case "png":
		return chartimg.New(), nil
	case "txt":
		return summary.New(), nil
	default:
		return nil, fmt.Errorf("unknown render format %q (want json, png, or txt)", format)
	}
}
