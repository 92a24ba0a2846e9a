package graph

import (
	"fmt"
	"strings"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
)

// Overlay contains highlight state to visualize on the cladogram.
type Overlay struct {
	// HighlightIDs marks clades to emphasize, typically every carrier of
	// one convergent trait.
	HighlightIDs []string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a tree of
// life. It applies semantic styling:
// - Root: ((Circle))
// - Leaf clade: ([Stadium])
// - Default: [Rectangle]
// Annotated traits are folded into the clade label. Overlay highlights are
// applied as classes if provided.
func GenerateMermaid(root exhibit.Clade, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	writeClade(&sb, root, true)

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme (Light/Dark)
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")

		// Deduplicate highlighted clades (using safeIDs)
		seen := make(map[string]bool)
		for _, id := range overlay.HighlightIDs {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s highlight;\n", safeID))
			}
		}
	}

	return sb.String()
}

func writeClade(sb *strings.Builder, c exhibit.Clade, isRoot bool) {
	// Sanitize ID for Mermaid
	safeID := sanitizeMermaidID(c.ID)

	// Clade Shape based on position in the tree
	opener, closer := "[", "]"
	switch {
	case isRoot:
		opener, closer = "((", "))" // Circle
	case len(c.Children) == 0:
		opener, closer = "([", "])" // Stadium
	}

	label := escapeMermaidLabel(c.Name)
	if len(c.Traits) > 0 {
		// Annotate clade with its convergent traits
		label = fmt.Sprintf("%s <br/> %s", label, escapeMermaidLabel(strings.Join(c.Traits, ", ")))
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

	for _, child := range c.Children {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(child.ID)))
		writeClade(sb, child, false)
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// escapeMermaidLabel swaps double quotes for singles so labels stay valid.
func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
