package tests

import (
	"testing"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
)

// TestCertificationSuite renders every embedded chart through every shipped
// surface. A chart that hangs in the museum must survive all of them.
func TestCertificationSuite(t *testing.T) {
	museum, err := lifebeyond.Open("")
	if err != nil {
		t.Fatalf("Failed to open museum: %v", err)
	}

	formats := []string{"json", "png", "txt"}

	for _, w := range museum.Wings() {
		for _, ref := range w.Charts {
			t.Run(w.ID+"/"+ref.ID, func(t *testing.T) {
				spec, err := museum.BuildChart(ref.ID, nil)
				if err != nil {
					t.Fatalf("Failed to build: %v", err)
				}
				if err := spec.Validate(); err != nil {
					t.Fatalf("Spec invalid: %v", err)
				}

				for _, format := range formats {
					renderer, err := lifebeyond.RendererFor(format)
					if err != nil {
						t.Fatalf("Failed to pick %s renderer: %v", format, err)
					}

					data, err := renderer.Render(&spec)
					if err != nil {
						t.Fatalf("Render %s failed: %v", format, err)
					}
					if len(data) == 0 {
						t.Fatalf("Render %s produced no output", format)
					}
				}
			})
		}
	}
}
