/*
Package lifebeyond is a deterministic chart-generation library and CLI for a
speculative-astrobiology exhibit: five museum wings that visualize how
gravity, starlight, and chemistry would shape life on other worlds.

The core is a set of pure generators that map named parameters (a gravity
label, a star class, a biochemistry, a garden biome) to an ordered chart
specification. The same parameters always produce the same specification,
down to the bytes; randomness only enters through explicit seeds.

# Concept

The museum separates what a chart IS from how it is drawn. Generators build
renderer-neutral Specs (ordered traces plus layout metadata); renderer
adapters turn a Spec into a PNG, a figure JSON document, or a terminal
summary. This keeps the science pure and testable while hosts choose their
own surface.

# Key Features

  - Deterministic generation: identical parameters yield identical Specs.
  - Strict vs. defaulted parameters: scientific inputs fail loudly,
    presentation labels fall back to documented defaults.
  - Embedded catalog: five curated wings ship inside the binary; extra
    wings can hang from a directory at runtime.
  - Renderer contract: any render surface implementing the ports.Renderer
    interface plugs into the CLI and the export walk.

# Usage

Open the museum and build a chart, overriding any catalog default:

	package main

	import (
		"fmt"
		"log"

		lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	)

	func main() {
		museum, err := lifebeyond.Open("")
		if err != nil {
			log.Fatal(err)
		}

		// Build a catalog chart with a parameter override.
		spec, err := museum.BuildChart("ember-dunes", map[string]any{"seed": 99})
		if err != nil {
			log.Fatal(err)
		}

		// Render it on the default surface (figure JSON).
		out, err := museum.Renderer().Render(&spec)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d traces, %d bytes\n", len(spec.Traces), len(out))
	}
*/
package lifebeyond
