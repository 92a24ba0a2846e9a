package params

import "strings"

// Gravity classifies a world's surface gravity regime.
type Gravity string

const (
	GravityLow    Gravity = "low"
	GravityNormal Gravity = "normal"
	GravityHigh   Gravity = "high"
)

// ParseGravity maps a gravity label to its class. Gravity is a defaulted
// parameter: unknown labels fall back to GravityNormal instead of failing.
// The second return value reports whether the label was recognized, so
// callers that want to surface the fallback (a CLI warning, a log line)
// can do so.
func ParseGravity(label string) (Gravity, bool) {
	switch Gravity(strings.ToLower(strings.TrimSpace(label))) {
	case GravityLow:
		return GravityLow, true
	case GravityNormal:
		return GravityNormal, true
	case GravityHigh:
		return GravityHigh, true
	default:
		return GravityNormal, false
	}
}

// Label returns the display name of the gravity class.
func (g Gravity) Label() string {
	switch g {
	case GravityLow:
		return "Low Gravity"
	case GravityHigh:
		return "High Gravity"
	default:
		return "Normal Gravity"
	}
}

// StarClass identifies the host star archetype.
type StarClass string

const (
	StarRedDwarf  StarClass = "red-dwarf"
	StarSunLike   StarClass = "sun-like"
	StarBlueGiant StarClass = "blue-giant"
)

// StarClasses lists all known classes in ascending temperature order.
func StarClasses() []StarClass {
	return []StarClass{StarRedDwarf, StarSunLike, StarBlueGiant}
}

// ParseStarClass converts a string to a StarClass. Star class is strict:
// unknown values are rejected with ErrInvalidParameter.
func ParseStarClass(s string) (StarClass, error) {
	switch StarClass(strings.ToLower(strings.TrimSpace(s))) {
	case StarRedDwarf:
		return StarRedDwarf, nil
	case StarSunLike:
		return StarSunLike, nil
	case StarBlueGiant:
		return StarBlueGiant, nil
	default:
		return "", NewParameterError("star_class", s, "unknown star class")
	}
}

// Label returns the display name of the star class.
func (s StarClass) Label() string {
	switch s {
	case StarRedDwarf:
		return "Red Dwarf"
	case StarSunLike:
		return "Sun-like Star"
	case StarBlueGiant:
		return "Blue Giant"
	default:
		return string(s)
	}
}

// MoleculeKind identifies a biochemistry backbone molecule.
type MoleculeKind string

const (
	MoleculeCarbon  MoleculeKind = "carbon"
	MoleculeSilicon MoleculeKind = "silicon"
)

// ParseMoleculeKind converts a string to a MoleculeKind. Molecule kind is
// strict: unknown kinds are rejected with ErrInvalidParameter, never
// defaulted.
func ParseMoleculeKind(s string) (MoleculeKind, error) {
	switch MoleculeKind(strings.ToLower(strings.TrimSpace(s))) {
	case MoleculeCarbon:
		return MoleculeCarbon, nil
	case MoleculeSilicon:
		return MoleculeSilicon, nil
	default:
		return "", NewParameterError("molecule", s, "unknown molecule kind")
	}
}

// Label returns the display name of the molecule kind.
func (m MoleculeKind) Label() string {
	switch m {
	case MoleculeCarbon:
		return "Carbon Chain"
	case MoleculeSilicon:
		return "Silicon Chain"
	default:
		return string(m)
	}
}

// GardenKind identifies one of the museum's garden biomes. Each garden
// carries the color palette its landscape is painted with.
type GardenKind string

const (
	GardenVerdant GardenKind = "verdant"
	GardenEmber   GardenKind = "ember"
	GardenFrost   GardenKind = "frost"
	GardenAbyss   GardenKind = "abyss"
)

// GardenKinds lists all known garden biomes.
func GardenKinds() []GardenKind {
	return []GardenKind{GardenVerdant, GardenEmber, GardenFrost, GardenAbyss}
}

// ParseGardenKind converts a string to a GardenKind. Garden kind is strict:
// unknown values are rejected with ErrInvalidParameter.
func ParseGardenKind(s string) (GardenKind, error) {
	switch GardenKind(strings.ToLower(strings.TrimSpace(s))) {
	case GardenVerdant:
		return GardenVerdant, nil
	case GardenEmber:
		return GardenEmber, nil
	case GardenFrost:
		return GardenFrost, nil
	case GardenAbyss:
		return GardenAbyss, nil
	default:
		return "", NewParameterError("garden", s, "unknown garden kind")
	}
}

// Label returns the display name of the garden biome.
func (g GardenKind) Label() string {
	switch g {
	case GardenVerdant:
		return "Verdant Garden"
	case GardenEmber:
		return "Ember Garden"
	case GardenFrost:
		return "Frost Garden"
	case GardenAbyss:
		return "Abyssal Garden"
	default:
		return string(g)
	}
}

// Palette returns the color palette of the garden biome.
func (g GardenKind) Palette() Palette {
	switch g {
	case GardenEmber:
		return Palette{Sky: "#ffb347", Ground: "#7f3300", Flora: "#e25822"}
	case GardenFrost:
		return Palette{Sky: "#b0e0e6", Ground: "#dff3f7", Flora: "#4682b4"}
	case GardenAbyss:
		return Palette{Sky: "#0b1026", Ground: "#1c2841", Flora: "#00ced1"}
	default:
		return Palette{Sky: "#87ceeb", Ground: "#2e8b57", Flora: "#32cd32"}
	}
}

// String implementations so the enums print as their wire form in logs
// and error messages.
func (g Gravity) String() string      { return string(g) }
func (s StarClass) String() string    { return string(s) }
func (m MoleculeKind) String() string { return string(m) }
func (g GardenKind) String() string   { return string(g) }
