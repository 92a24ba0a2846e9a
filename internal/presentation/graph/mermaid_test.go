package graph_test

import (
	"strings"
	"testing"

	"github.com/Devanik21/Life-Beyond-sub000/internal/presentation/graph"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		root     exhibit.Clade
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Root And Leaf Shapes",
			root: exhibit.Clade{
				ID:   "luca",
				Name: "LUCA",
				Children: []exhibit.Clade{
					{ID: "archaea", Name: "Archaea"},
				},
			},
			contains: []string{
				"luca((\"LUCA\"))",
				"archaea([\"Archaea\"])",
				"luca --> archaea",
			},
		},
		{
			name: "Internal Clade Is Rectangular",
			root: exhibit.Clade{
				ID:   "luca",
				Name: "LUCA",
				Children: []exhibit.Clade{
					{
						ID:   "animals",
						Name: "Animals",
						Children: []exhibit.Clade{
							{ID: "bats", Name: "Bats"},
						},
					},
				},
			},
			contains: []string{
				"animals[\"Animals\"]",
				"animals --> bats",
			},
		},
		{
			name: "Trait Annotation",
			root: exhibit.Clade{
				ID:     "cephalopods",
				Name:   "Cephalopods",
				Traits: []string{"eyes", "camouflage"},
			},
			contains: []string{
				"cephalopods((\"Cephalopods <br/> eyes, camouflage\"))",
			},
		},
		{
			name: "ID Sanitization",
			root: exhibit.Clade{
				ID:   "tree.root",
				Name: "Root",
				Children: []exhibit.Clade{
					{ID: "land-plants", Name: "Land Plants"},
				},
			},
			contains: []string{
				"tree_root((\"Root\"))",
				"land_plants([\"Land Plants\"])",
				"tree_root --> land_plants",
			},
		},
		{
			name: "Overlay Highlights Deduplicated",
			root: exhibit.Clade{
				ID:   "luca",
				Name: "LUCA",
				Children: []exhibit.Clade{
					{ID: "bats", Name: "Bats"},
					{ID: "birds", Name: "Birds"},
				},
			},
			overlay: &graph.Overlay{
				HighlightIDs: []string{"bats", "birds", "bats"},
			},
			contains: []string{
				"classDef highlight",
				"class bats highlight;",
				"class birds highlight;",
			},
		},
		{
			name: "Label Escaping",
			root: exhibit.Clade{
				ID:   "luca",
				Name: `the "universal" ancestor`,
			},
			contains: []string{
				"luca((\"the 'universal' ancestor\"))",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.root, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaidHighlightAppearsOnce(t *testing.T) {
	root := exhibit.Clade{ID: "luca", Name: "LUCA", Children: []exhibit.Clade{{ID: "bats", Name: "Bats"}}}
	got := graph.GenerateMermaid(root, &graph.Overlay{HighlightIDs: []string{"bats", "bats"}})

	if n := strings.Count(got, "class bats highlight;"); n != 1 {
		t.Errorf("highlight for bats emitted %d times, want 1", n)
	}
}
