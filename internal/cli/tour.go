package cli

import (
	"context"
	"fmt"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	"github.com/Devanik21/Life-Beyond-sub000/internal/presentation/tui"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/export"
)

// RunTour walks every wing and writes the whole museum to disk, one
// directory per wing with its placard and rendered charts.
func RunTour(opts Options) error {
	logger := createLogger(opts.Debug)
	ConfigureColor(opts.NoColor)

	tui.PrintBanner(lifebeyond.Version)

	renderer, err := lifebeyond.RendererFor(opts.Format)
	if err != nil {
		return err
	}

	m, err := lifebeyond.Open(opts.WingsDir,
		lifebeyond.WithLogger(logger),
		lifebeyond.WithRenderer(renderer),
	)
	if err != nil {
		return fmt.Errorf("error opening museum: %w", err)
	}

	// Setup signal handling so a half-written tour stops at a chart boundary.
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	printSystemMessage("Touring %d wings into '%s'...", len(m.Wings()), opts.Out)

	exporter := export.New(renderer)
	exporter.Logger = logger

	written, runErr := exporter.Export(sigCtx, m, opts.Out)

	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	switch {
	case runErr == nil:
		printSystemMessage("Tour complete: %d charts in '%s'.", written, opts.Out)
	case isInterrupted(runErr):
		printSystemMessage("Tour interrupted after %d charts.", written)
	}

	return handleExecutionError(runErr)
}
