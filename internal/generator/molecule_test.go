package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devanik21/Life-Beyond-sub000/pkg/chart"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
)

func TestMolecule_Carbon(t *testing.T) {
	spec, err := Molecule(MoleculeParams{Kind: params.MoleculeCarbon})
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	atoms, bonds := splitMolecule(t, spec)
	assert.Equal(t, 5, atoms.Len(), "carbon backbone has five atoms")
	assert.Len(t, bonds, 4, "five atoms in a chain share four bonds")
	assert.InDelta(t, carbonAtomSize, atoms.Style.MarkerSize, 1e-9)
	assert.Equal(t, []string{"C", "C", "C", "C", "C"}, atoms.Labels)
}

func TestMolecule_Silicon(t *testing.T) {
	spec, err := Molecule(MoleculeParams{Kind: params.MoleculeSilicon})
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	atoms, bonds := splitMolecule(t, spec)
	assert.Equal(t, 3, atoms.Len(), "silicon backbone has three atoms")
	assert.Len(t, bonds, 2)
	assert.InDelta(t, siliconAtomSize, atoms.Style.MarkerSize, 1e-9)
	assert.Greater(t, atoms.Style.MarkerSize, carbonAtomSize, "silicon atoms draw larger than carbon")
}

func TestMolecule_BondsConnectConsecutiveAtoms(t *testing.T) {
	spec, err := Molecule(MoleculeParams{Kind: params.MoleculeCarbon})
	require.NoError(t, err)

	atoms, bonds := splitMolecule(t, spec)
	for i, bond := range bonds {
		require.NotNil(t, bond.Z, "bonds are 3D segments")
		assert.Equal(t, atoms.X[i], bond.X[0], "bond %d start x", i)
		assert.Equal(t, atoms.Y[i], bond.Y[0], "bond %d start y", i)
		assert.Equal(t, atoms.Z[i], bond.Z[0], "bond %d start z", i)
		assert.Equal(t, atoms.X[i+1], bond.X[1], "bond %d end x", i)
		assert.Equal(t, atoms.Y[i+1], bond.Y[1], "bond %d end y", i)
		assert.Equal(t, atoms.Z[i+1], bond.Z[1], "bond %d end z", i)
	}
}

func TestMolecule_BondsDrawUnderAtoms(t *testing.T) {
	spec, err := Molecule(MoleculeParams{Kind: params.MoleculeSilicon})
	require.NoError(t, err)

	last := spec.Traces[len(spec.Traces)-1]
	assert.Equal(t, chart.KindScatter3D, last.Kind, "atom markers paint over the bonds")
}

func TestMolecule_UnknownKind(t *testing.T) {
	_, err := Molecule(MoleculeParams{Kind: "arsenic"})
	assert.ErrorIs(t, err, params.ErrInvalidParameter)

	_, err = Molecule(MoleculeParams{})
	assert.ErrorIs(t, err, params.ErrInvalidParameter, "empty kind is never defaulted")
}

// splitMolecule separates the single atom trace from the bond segments.
func splitMolecule(t *testing.T, spec chart.Spec) (chart.Trace, []chart.Trace) {
	t.Helper()

	var atoms *chart.Trace
	var bonds []chart.Trace
	for i := range spec.Traces {
		switch spec.Traces[i].Kind {
		case chart.KindScatter3D:
			require.Nil(t, atoms, "exactly one atom trace expected")
			atoms = &spec.Traces[i]
		case chart.KindSegment:
			bonds = append(bonds, spec.Traces[i])
		default:
			t.Fatalf("unexpected trace kind %q in molecule spec", spec.Traces[i].Kind)
		}
	}
	require.NotNil(t, atoms, "molecule spec must contain an atom trace")
	return *atoms, bonds
}
