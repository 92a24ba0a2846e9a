// Package export walks an open museum and writes every wing to disk: the
// placard as markdown, every chart rendered through a pluggable surface.
// This allows snapshotting the whole exhibit for static hosting or diffing
// two parameter sets file by file.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	"github.com/Devanik21/Life-Beyond-sub000/internal/logging"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/ports"
)

// Exporter writes a museum to an output tree using the provided IO.
type Exporter struct {
	Renderer ports.Renderer
	Logger   *slog.Logger
}

// New creates an Exporter for the given render surface.
func New(r ports.Renderer) *Exporter {
	return &Exporter{Renderer: r}
}

// Export renders every wing into outDir, one directory per wing: README.md
// for the placard plus one file per chart, named by chart id and the
// renderer's format. It returns the number of charts written.
func (e *Exporter) Export(ctx context.Context, museum *lifebeyond.Museum, outDir string) (int, error) {
	if e.Renderer == nil {
		return 0, fmt.Errorf("renderer must be set")
	}
	log := e.Logger
	if log == nil {
		log = logging.NewNop()
	}

	written := 0
	for _, wing := range museum.Wings() {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		wingDir := filepath.Join(outDir, wing.ID)
		if err := os.MkdirAll(wingDir, 0o755); err != nil {
			return written, fmt.Errorf("create wing dir: %w", err)
		}

		page := placard(wing, e.Renderer.Format())
		if err := os.WriteFile(filepath.Join(wingDir, "README.md"), []byte(page), 0o644); err != nil {
			return written, fmt.Errorf("write placard for %s: %w", wing.ID, err)
		}

		for _, ref := range wing.Charts {
			if err := ctx.Err(); err != nil {
				return written, err
			}

			spec, err := museum.BuildChart(ref.ID, nil)
			if err != nil {
				return written, err
			}
			data, err := e.Renderer.Render(&spec)
			if err != nil {
				return written, fmt.Errorf("render chart %s: %w", ref.ID, err)
			}

			name := ref.ID + "." + e.Renderer.Format()
			if err := os.WriteFile(filepath.Join(wingDir, name), data, 0o644); err != nil {
				return written, fmt.Errorf("write chart %s: %w", ref.ID, err)
			}
			written++
			log.Debug("chart exported", "wing", wing.ID, "chart", ref.ID, "bytes", len(data))
		}

		log.Info("wing exported", "wing", wing.ID, "charts", len(wing.Charts))
	}
	return written, nil
}

// placard assembles the wing's markdown page. The intro already carries its
// own heading; the gallery section links the rendered chart files.
func placard(w exhibit.Wing, ext string) string {
	var b strings.Builder

	if w.Intro != "" {
		b.WriteString(w.Intro)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "# %s\n", w.Title)
		if w.Tagline != "" {
			fmt.Fprintf(&b, "\n*%s*\n", w.Tagline)
		}
	}

	if len(w.Charts) > 0 {
		b.WriteString("\n## Charts\n\n")
		for _, c := range w.Charts {
			title := c.Title
			if title == "" {
				title = c.ID
			}
			fmt.Fprintf(&b, "- [%s](%s.%s)", title, c.ID, ext)
			if c.Caption != "" {
				fmt.Fprintf(&b, ": %s", c.Caption)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
