package catalog

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
)

// parseWing converts one wing markdown file into the exhibit model. The
// file carries a YAML frontmatter header; everything after it becomes the
// wing's intro placard. fileID is the filename without extension and is
// used as the wing id when the header does not set one.
func parseWing(fileID string, data []byte) (exhibit.Wing, error) {
	meta, body, err := splitFrontmatter(data)
	if err != nil {
		return exhibit.Wing{}, fmt.Errorf("wing %s: %w", fileID, err)
	}

	var fm wingMeta
	if err := mapstructure.Decode(meta, &fm); err != nil {
		return exhibit.Wing{}, fmt.Errorf("wing %s: frontmatter: %w", fileID, err)
	}

	id := fm.ID
	if id == "" {
		id = fileID
	}

	wing := exhibit.Wing{
		ID:      id,
		Title:   fm.Title,
		Tagline: fm.Tagline,
		Order:   fm.Order,
		Intro:   body,
	}
	for _, c := range fm.Charts {
		wing.Charts = append(wing.Charts, exhibit.ChartRef{
			ID:        c.ID,
			Title:     c.Title,
			Generator: c.Generator,
			Params:    c.Params,
			Caption:   c.Caption,
		})
	}
	return wing, nil
}

// splitFrontmatter separates the YAML header from the markdown body. The
// header must open the file with a "---" line and close with another.
func splitFrontmatter(data []byte) (map[string]any, string, error) {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(s, "---\n") {
		return nil, "", fmt.Errorf("missing frontmatter header")
	}

	rest := s[len("---\n"):]
	var header, body string
	if end := strings.Index(rest, "\n---\n"); end >= 0 {
		header = rest[:end]
		body = rest[end+len("\n---\n"):]
	} else if trimmed, ok := strings.CutSuffix(rest, "\n---"); ok {
		header = trimmed
	} else {
		return nil, "", fmt.Errorf("unterminated frontmatter header")
	}

	meta := make(map[string]any)
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return nil, "", fmt.Errorf("frontmatter: %w", err)
	}
	return meta, strings.TrimSpace(body), nil
}
