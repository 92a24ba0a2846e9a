// Package catalog assembles the museum's wings from embedded markdown
// files. Each wing file carries a YAML frontmatter header describing the
// charts it hangs; the markdown body is the wing's placard. A curator can
// hang extra wings from a directory without rebuilding the binary.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
)

//go:embed wings/*.md tree.yaml
var content embed.FS

// Catalog holds the validated wings in tour order plus the tree of life.
type Catalog struct {
	wings []exhibit.Wing
	tree  exhibit.Clade
}

// Load assembles the catalog from the embedded wing files plus, when
// extraDir is non-empty, every *.md file inside it. Wings are sorted by
// their declared order and the whole catalog is validated before use.
func Load(extraDir string) (*Catalog, error) {
	wings, err := loadWings(content, "wings")
	if err != nil {
		return nil, err
	}

	if extraDir != "" {
		extra, err := loadWings(os.DirFS(extraDir), ".")
		if err != nil {
			return nil, fmt.Errorf("extra wings in %s: %w", extraDir, err)
		}
		wings = append(wings, extra...)
	}

	sort.SliceStable(wings, func(i, j int) bool {
		if wings[i].Order != wings[j].Order {
			return wings[i].Order < wings[j].Order
		}
		return wings[i].ID < wings[j].ID
	})

	if err := validateWings(wings); err != nil {
		return nil, err
	}

	tree, err := loadTree()
	if err != nil {
		return nil, err
	}

	return &Catalog{wings: wings, tree: tree}, nil
}

// loadWings parses every wing file under dir in fsys.
func loadWings(fsys fs.FS, dir string) ([]exhibit.Wing, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read wings dir: %w", err)
	}

	var wings []exhibit.Wing
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read wing %s: %w", entry.Name(), err)
		}
		wing, err := parseWing(strings.TrimSuffix(entry.Name(), ".md"), data)
		if err != nil {
			return nil, err
		}
		wings = append(wings, wing)
	}
	return wings, nil
}

func loadTree() (exhibit.Clade, error) {
	data, err := content.ReadFile("tree.yaml")
	if err != nil {
		return exhibit.Clade{}, fmt.Errorf("read tree: %w", err)
	}
	var tree exhibit.Clade
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return exhibit.Clade{}, fmt.Errorf("parse tree: %w", err)
	}
	return tree, nil
}

// Wings returns every wing in tour order.
func (c *Catalog) Wings() []exhibit.Wing {
	return append([]exhibit.Wing(nil), c.wings...)
}

// Wing returns the wing with the given id.
func (c *Catalog) Wing(id string) (exhibit.Wing, bool) {
	for _, w := range c.wings {
		if w.ID == id {
			return w, true
		}
	}
	return exhibit.Wing{}, false
}

// Chart finds a chart by its museum-unique id and returns it with the wing
// that hangs it.
func (c *Catalog) Chart(id string) (exhibit.Wing, exhibit.ChartRef, bool) {
	for _, w := range c.wings {
		if ref, ok := w.ChartByID(id); ok {
			return w, ref, true
		}
	}
	return exhibit.Wing{}, exhibit.ChartRef{}, false
}

// Tree returns the museum's tree of life.
func (c *Catalog) Tree() exhibit.Clade {
	return c.tree
}
