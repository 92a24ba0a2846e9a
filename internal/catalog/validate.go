package catalog

import (
	"fmt"
	"strings"

	"github.com/Devanik21/Life-Beyond-sub000/internal/generator"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/exhibit"
)

// validateWings checks the assembled catalog for curator mistakes: duplicate
// ids, charts bound to unknown generators, and default params the generator
// rejects. Chart ids must be unique across the whole museum so a chart can
// be addressed without naming its wing. All problems are reported at once.
func validateWings(wings []exhibit.Wing) error {
	var problems []string

	seenWings := make(map[string]bool)
	chartOwners := make(map[string]string)

	for _, w := range wings {
		switch {
		case w.ID == "":
			problems = append(problems, fmt.Sprintf("wing titled %q: missing id", w.Title))
			continue
		case seenWings[w.ID]:
			problems = append(problems, fmt.Sprintf("wing '%s' is defined twice", w.ID))
			continue
		}
		seenWings[w.ID] = true

		if w.Title == "" {
			problems = append(problems, fmt.Sprintf("wing '%s': missing title", w.ID))
		}
		if len(w.Charts) == 0 {
			problems = append(problems, fmt.Sprintf("wing '%s': hangs no charts", w.ID))
		}

		for _, ref := range w.Charts {
			if ref.ID == "" {
				problems = append(problems, fmt.Sprintf("wing '%s': chart with missing id", w.ID))
				continue
			}
			if owner, ok := chartOwners[ref.ID]; ok {
				problems = append(problems, fmt.Sprintf("chart '%s' is defined in both wing '%s' and wing '%s'", ref.ID, owner, w.ID))
				continue
			}
			chartOwners[ref.ID] = w.ID

			if !generator.Known(ref.Generator) {
				problems = append(problems, fmt.Sprintf("chart '%s': unknown generator '%s'", ref.ID, ref.Generator))
				continue
			}
			if _, err := generator.Build(ref.Generator, ref.Params); err != nil {
				problems = append(problems, fmt.Sprintf("chart '%s': %v", ref.ID, err))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d catalog errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}
