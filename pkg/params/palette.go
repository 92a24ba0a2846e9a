package params

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the three colors a landscape is painted with. Colors are
// "#RRGGBB" hex strings.
type Palette struct {
	Sky    string `json:"sky" yaml:"sky" mapstructure:"sky"`
	Ground string `json:"ground" yaml:"ground" mapstructure:"ground"`
	Flora  string `json:"flora" yaml:"flora" mapstructure:"flora"`
}

// Validate checks that every palette slot holds a parsable hex color.
// A missing color is an error, never a defaultable gap.
func (p Palette) Validate() error {
	for _, slot := range []struct {
		name  string
		value string
	}{
		{"sky", p.Sky},
		{"ground", p.Ground},
		{"flora", p.Flora},
	} {
		if slot.value == "" {
			return NewParameterError("palette."+slot.name, slot.value, "missing color")
		}
		if _, err := colorful.Hex(slot.value); err != nil {
			return NewParameterError("palette."+slot.name, slot.value, fmt.Sprintf("not a hex color: %v", err))
		}
	}
	return nil
}

// Blend returns the hex color a fraction t of the way from the palette's
// ground color to its sky color, in the perceptually even Lab space. The
// landscape generator uses it for horizon shading.
func (p Palette) Blend(t float64) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	ground, _ := colorful.Hex(p.Ground)
	sky, _ := colorful.Hex(p.Sky)
	return ground.BlendLab(sky, t).Clamped().Hex(), nil
}
