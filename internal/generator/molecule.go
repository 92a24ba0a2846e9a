package generator

import (
	"fmt"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

// Atom marker sizes and colors loosely follow CPK rendering conventions.
// Silicon atoms are drawn larger than carbon, matching their covalent radii.
const (
	carbonAtomSize  = 18.0
	siliconAtomSize = 26.0
	carbonColor     = "#4a4a4a"
	siliconColor    = "#f0c8a0"
	bondColor       = "#9aa0a6"
	bondWidth       = 5.0
)

// moleculeShape is a fixed backbone conformation. Coordinates are in
// ångströms; bonds connect consecutive atoms only.
type moleculeShape struct {
	X, Y, Z []float64
	Symbol  string
	Size    float64
	Color   string
}

var moleculeShapes = map[params.MoleculeKind]moleculeShape{
	params.MoleculeCarbon: {
		X:      []float64{0, 1, 2, 3, 4},
		Y:      []float64{0, 0.8, 0, 0.8, 0},
		Z:      []float64{0, 0.4, 0.8, 0.4, 0},
		Symbol: "C",
		Size:   carbonAtomSize,
		Color:  carbonColor,
	},
	params.MoleculeSilicon: {
		X:      []float64{0, 1.6, 3.2},
		Y:      []float64{0, 1.0, 0},
		Z:      []float64{0, 0.5, 0},
		Symbol: "Si",
		Size:   siliconAtomSize,
		Color:  siliconColor,
	},
}

// MoleculeParams parameterizes a backbone structure diagram. Kind is strict:
// an unknown kind is rejected rather than rendered as an empty diagram.
type MoleculeParams struct {
	Kind params.MoleculeKind
}

// Molecule generates a 3D backbone diagram: one bond segment per consecutive
// atom pair, drawn first, then a single atom marker trace on top.
func Molecule(p MoleculeParams) (chart.Spec, error) {
	kind, err := params.ParseMoleculeKind(string(p.Kind))
	if err != nil {
		return chart.Spec{}, err
	}
	shape := moleculeShapes[kind]

	b := chart.NewBuilder(kind.Label()).
		Subtitle(fmt.Sprintf("%d atoms, %d bonds", len(shape.X), len(shape.X)-1)).
		Axes("x (Å)", "y (Å)")

	for i := 0; i < len(shape.X)-1; i++ {
		b.Trace(chart.Trace{
			Kind:  chart.KindSegment,
			Name:  fmt.Sprintf("bond-%d", i+1),
			X:     []float64{shape.X[i], shape.X[i+1]},
			Y:     []float64{shape.Y[i], shape.Y[i+1]},
			Z:     []float64{shape.Z[i], shape.Z[i+1]},
			Style: chart.Style{Color: bondColor, Width: bondWidth},
		})
	}

	labels := make([]string, len(shape.X))
	for i := range labels {
		labels[i] = shape.Symbol
	}
	b.Scatter3D("atoms", shape.X, shape.Y, shape.Z).
		Styled(chart.Style{Color: shape.Color, MarkerSize: shape.Size}).
		Labeled(labels...)

	return b.Build()
}
