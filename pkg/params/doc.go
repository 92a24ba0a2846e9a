// Package params defines the domain parameter vocabulary the generators
// accept: gravity regimes, star classes, molecule kinds, garden biomes and
// their color palettes.
//
// All enums are closed sets with parse functions. Two failure policies apply,
// chosen per parameter:
//
//   - Strict parameters (star class, molecule kind, garden kind) reject
//     unknown values with an error wrapping ErrInvalidParameter. Callers can
//     test for the whole family with errors.Is and recover the offending
//     parameter with errors.As on *ParameterError.
//   - Defaulted parameters (the gravity label) fall back to a documented
//     default instead of failing. ParseGravity never returns an error; its
//     second return value reports whether the label was recognized.
//
// The distinction is deliberate: a misspelled gravity label still produces a
// sensible landscape, while a chart asking for an unknown molecule would
// otherwise render an empty diagram and hide the bug.
package params
