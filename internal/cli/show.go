package cli

import (
	"fmt"
	"strings"

	"github.com/Devanik21/Life-Beyond-sub000/internal/presentation/tui"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
)

// RunShow prints a wing placard rendered for the terminal: the narrative
// intro followed by an index of the charts the wing hangs.
func RunShow(opts Options, wingID string) error {
	m, err := openMuseum(opts)
	if err != nil {
		return err
	}

	w, err := m.Wing(wingID)
	if err != nil {
		return err
	}

	body := placardMarkdown(w)
	if opts.NoColor {
		fmt.Print(body)
		return nil
	}

	output := body
	render := tui.NewRenderer()
	if rendered, err := render(body); err == nil {
		output = rendered
	}
	fmt.Print(output)
	return nil
}

// placardMarkdown assembles the markdown source of a wing placard. The
// intro already carries the wing's own heading when present.
func placardMarkdown(w exhibit.Wing) string {
	var sb strings.Builder

	if w.Intro != "" {
		sb.WriteString(w.Intro)
		sb.WriteString("\n")
	} else {
		fmt.Fprintf(&sb, "# %s\n", w.Title)
		if w.Tagline != "" {
			fmt.Fprintf(&sb, "\n*%s*\n", w.Tagline)
		}
	}

	sb.WriteString("\n## Charts\n\n")
	for _, ref := range w.Charts {
		fmt.Fprintf(&sb, "- **%s** (`%s`, generator `%s`)", ref.Title, ref.ID, ref.Generator)
		if ref.Caption != "" {
			fmt.Fprintf(&sb, ": %s", ref.Caption)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
