// Package generator holds the four chart generator families behind the
// museum's exhibits: procedural garden landscapes, molecular backbone
// structures, blackbody emission spectra and the parametric scaling tables.
//
// Every generator is a pure function from typed parameters to a chart.Spec.
// Nothing here touches the clock, global random state, loggers or I/O; the
// only randomness (landscape jitter) comes from a caller-supplied seed or
// *rand.Rand, so identical inputs always produce identical specs.
//
// Build dispatches by generator name and decodes a raw parameter map, which
// is how catalog chart descriptors reach the typed functions.
package generator
