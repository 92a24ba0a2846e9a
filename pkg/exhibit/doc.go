/*
Package exhibit contains the public museum model shared by the catalog, the
renderers, and the CLI.

It defines the entities a curator works with. This package is kept pure and
free of external dependencies like I/O or rendering, so embedders can build
their own catalogs against plain data.

# Key Entities

  - Wing: A themed hall of the museum, with a markdown placard and charts.
  - ChartRef: A generator name plus the raw parameters to build one chart.
  - Clade: A node in the simplified tree of life, annotated with traits.
*/
package exhibit
