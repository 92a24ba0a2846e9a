package main

import (
	"fmt"
	"os"
	"path/filepath"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
)

func main() {
	targetDir := "extra-wings"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating sample wing in: %s\n", targetDir)

	// 1. Write the wing file
	err := os.WriteFile(filepath.Join(targetDir, "volcanic.md"), []byte(volcanicWing), 0o644)
	check(err)

	// 2. Open the museum with the extra dir to prove the wing hangs
	museum, err := lifebeyond.Open(targetDir)
	check(err)

	w, err := museum.Wing("volcanic")
	check(err)

	fmt.Printf("Done. Wing '%s' hangs %d charts.\n", w.Title, len(w.Charts))
	fmt.Printf("Try: lifebeyond show volcanic --wings-dir %s\n", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

const volcanicWing = `---
id: volcanic
title: "The Volcanic Annex"
tagline: "life at the lava line"
order: 9
charts:
  - id: lava-meadow
    title: "Lava Meadow"
    generator: landscape
    params:
      garden: ember
      gravity: high
      seed: 17
    caption: "Ember flora rooted in cooling basalt."
  - id: annex-silicon
    title: "Silicon at the Vent"
    generator: molecule
    params:
      kind: silicon
    caption: "Where carbon chains crack, silicon persists."
---

# The Volcanic Annex

Some worlds never cool. On them the garden grows at the lava line, where
mineral-rich gas feeds flora that would starve in gentler soil.

This annex is a template: copy the file, change the parameters, and hang
your own wing with --wings-dir.
`
