package ports

import "github.com/Devanik21/Life-Beyond-sub000/pkg/chart"

// Renderer encodes chart specs into one concrete output format.
// Implementations are pure encoders: same spec in, same bytes out, no
// retained state between calls.
type Renderer interface {
	// Format returns the lower-case format identifier, which doubles as
	// the output file extension (e.g. "png", "json", "txt").
	Format() string

	// Render encodes the spec. Implementations must reject nil and
	// structurally invalid specs rather than drawing garbage.
	Render(spec *chart.Spec) ([]byte, error)
}
