// Package chart defines the renderable chart description produced by the
// exhibit generators.
//
// A Spec is a plain value: an ordered list of Traces plus layout metadata
// (title, axis labels, canvas size) and optional decorative Bands. It carries
// no rendering behavior and no styling engine; hosts (PNG, figure JSON,
// terminal) decide how to draw it. Once built, a Spec is never mutated.
//
// Specs can be assembled directly:
//
//	spec := chart.Spec{
//	    Title:  "Blackbody Emission",
//	    XLabel: "Wavelength (nm)",
//	    Traces: []chart.Trace{{Kind: chart.KindArea, Name: "M-class dwarf", X: xs, Y: ys}},
//	}
//
// or fluently through a Builder:
//
//	spec, err := chart.NewBuilder("Blackbody Emission").
//	    Axes("Wavelength (nm)", "Relative Intensity").
//	    Area("M-class dwarf", xs, ys).
//	    Build()
//
// Build validates the result; Validate can also be called on any
// hand-assembled Spec. Validation failures are reported per field and
// aggregated, so a malformed Spec surfaces every problem at once.
//
// This package is kept free of external dependencies so that generators and
// renderers can share it without pulling in either side's stack.
package chart
