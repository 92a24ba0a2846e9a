/*
Package ports defines the driven ports (interfaces) for the museum core.

These interfaces decouple chart generation from the surfaces that draw the
results, so the same chart.Spec can reach a PNG canvas, a figure JSON
document or a terminal summary without the core knowing which.

# Key Interfaces

  - Renderer: Encodes a chart.Spec into one output format (PNG, JSON, text).

RunRendererContract exercises the behavior every Renderer implementation
must share; adapter test suites run it against their own renderer.
*/
package ports
