/*
 * slab_test.go, part of goxtal.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package surface

import (
	"math"
	"sort"
	"testing"

	xtal "github.com/goxtal/xtal"
	v3 "github.com/goxtal/xtal/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//cubicStructure builds a 5 Å cubic cell with the given atoms at Cartesian
//positions.
func cubicStructure(t *testing.T, symbols []string, positions []float64) *xtal.Structure {
	t.Helper()
	lat := cubicLattice(t, 5)
	atoms := make([]*xtal.Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &xtal.Atom{Symbol: s}
	}
	coords, err := v3.NewMatrix(positions)
	require.NoError(t, err)
	S, err := xtal.NewStructure(lat, atoms, coords)
	require.NoError(t, err)
	return S
}

//TestCut001Identity cuts along an existing axis with no vacuum, which must
//be a no-op on the geometry.
func TestCut001Identity(t *testing.T) {
	S := cubicStructure(t, []string{"Po"}, []float64{0, 0, 0})
	slab, err := NewCutter().Cut(S, Miller{0, 0, 1}, 1, 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		orig := S.Lattice.Vec(i)
		got := slab.Lattice.Vec(i)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, orig[j], got[j], 1e-9, "lattice vector %d changed", i)
		}
	}
	require.Equal(t, 1, slab.Len())
	assert.Equal(t, "Slab (001)", slab.Formula)
}

func TestCutThicknessStacking(t *testing.T) {
	S := cubicStructure(t, []string{"Po"}, []float64{0, 0, 0})
	slab, err := NewCutter().Cut(S, Miller{0, 0, 1}, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, slab.Len())
	assert.InDelta(t, 3*S.Volume(), slab.Volume(), 1e-9)
	var zs []float64
	for i := 0; i < 3; i++ {
		zs = append(zs, slab.Coords.At(i, 2))
	}
	sort.Float64s(zs)
	assert.InDelta(t, 0, zs[0], 1e-9)
	assert.InDelta(t, 5, zs[1], 1e-9)
	assert.InDelta(t, 10, zs[2], 1e-9)
	for i := 0; i < slab.Len(); i++ {
		assert.Equal(t, i, slab.Atom(i).Index, "atom indexes must be dense")
	}
}

//TestCutVacuumKeepsAtoms checks the z-compression: vacuum grows the cell but
//must not move the atoms.
func TestCutVacuumKeepsAtoms(t *testing.T) {
	S := cubicStructure(t, []string{"Na", "Cl"}, []float64{0, 0, 0, 2.5, 2.5, 2.5})
	slab, err := NewCutter().Cut(S, Miller{0, 0, 1}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, slab.Len())
	c := slab.Lattice.Vec(2)
	assert.InDelta(t, 15, c[2], 1e-9, "vacuum must extend c")
	//positions sorted by z to make the comparison order-independent
	type pos struct {
		sym string
		xyz [3]float64
	}
	var got []pos
	for i := 0; i < slab.Len(); i++ {
		got = append(got, pos{slab.Atom(i).Symbol, [3]float64{slab.Coords.At(i, 0), slab.Coords.At(i, 1), slab.Coords.At(i, 2)}})
	}
	sort.Slice(got, func(i, j int) bool { return got[i].xyz[2] < got[j].xyz[2] })
	assert.Equal(t, "Na", got[0].sym)
	assert.InDelta(t, 0, got[0].xyz[2], 1e-9)
	assert.Equal(t, "Cl", got[1].sym)
	assert.InDelta(t, 2.5, got[1].xyz[2], 1e-9)
}

//TestCutVacuumMonotonic checks that growing the vacuum strictly grows the
//projection of c on the surface normal while the in-plane vectors stay put.
func TestCutVacuumMonotonic(t *testing.T) {
	S := cubicStructure(t, []string{"Po"}, []float64{0, 0, 0})
	m := Miller{1, 1, 0}
	normal, err := m.Normal(S.Lattice)
	require.NoError(t, err)
	n := [3]float64{normal.At(0, 0), normal.At(0, 1), normal.At(0, 2)}
	last := math.Inf(-1)
	var firstA, firstB [3]float64
	for i, vac := range []float64{0, 2, 7} {
		slab, err := NewCutter().Cut(S, m, 2, vac)
		require.NoError(t, err)
		c := slab.Lattice.Vec(2)
		proj := math.Abs(c[0]*n[0] + c[1]*n[1] + c[2]*n[2])
		assert.Greater(t, proj, last, "vacuum %v must extend the slab", vac)
		last = proj
		if i == 0 {
			firstA = slab.Lattice.Vec(0)
			firstB = slab.Lattice.Vec(1)
			continue
		}
		assert.Equal(t, firstA, slab.Lattice.Vec(0), "in-plane a must not depend on vacuum")
		assert.Equal(t, firstB, slab.Lattice.Vec(1), "in-plane b must not depend on vacuum")
	}
}

func TestCutValidation(t *testing.T) {
	S := cubicStructure(t, []string{"Po"}, []float64{0, 0, 0})
	cutter := NewCutter()

	_, err := cutter.Cut(S, Miller{0, 0, 0}, 1, 0)
	assert.True(t, xtal.IsKind(err, xtal.InvalidInput), "zero Miller index: %v", err)

	_, err = cutter.Cut(S, Miller{1, 0, 0}, 0, 0)
	assert.True(t, xtal.IsKind(err, xtal.InvalidInput), "zero thickness: %v", err)

	_, err = cutter.Cut(S, Miller{1, 0, 0}, 1, -1)
	assert.True(t, xtal.IsKind(err, xtal.InvalidInput), "negative vacuum: %v", err)

	empty, err := xtal.Expand(nil, nil, xtal.CellParams{A: 5, B: 5, C: 5, Alpha: 90, Beta: 90, Gamma: 90})
	require.NoError(t, err)
	_, err = cutter.Cut(empty, Miller{1, 0, 0}, 1, 0)
	assert.True(t, xtal.IsKind(err, xtal.InvalidInput), "empty structure: %v", err)
}

//TestCutDeterministic checks that the worker count does not change results.
func TestCutDeterministic(t *testing.T) {
	S := cubicStructure(t, []string{"Na", "Cl"}, []float64{0, 0, 0, 2.5, 2.5, 2.5})
	m := Miller{1, 1, 0}
	one, err := NewCutter(WithWorkers(1)).Cut(S, m, 2, 3)
	require.NoError(t, err)
	many, err := NewCutter(WithWorkers(8)).Cut(S, m, 2, 3)
	require.NoError(t, err)
	require.Equal(t, one.Len(), many.Len())
	for i := 0; i < one.Len(); i++ {
		assert.Equal(t, one.Atom(i).Symbol, many.Atom(i).Symbol)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, one.Coords.At(i, j), many.Coords.At(i, j), 1e-12)
		}
	}
}

//TestCutOblique cuts a surface that is not parallel to any cell face and
//checks the count/volume bookkeeping.
func TestCutOblique(t *testing.T) {
	S := cubicStructure(t, []string{"Po"}, []float64{0, 0, 0})
	slab, err := NewCutter().Cut(S, Miller{1, 1, 0}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, slab.Len(), "unimodular transform keeps one atom per layer")
	assert.InDelta(t, 2*S.Volume(), slab.Volume(), 1e-9)
}

func TestCutDoesNotMutate(t *testing.T) {
	S := cubicStructure(t, []string{"Na", "Cl"}, []float64{0, 0, 0, 2.5, 2.5, 2.5})
	_, err := NewCutter().Cut(S, Miller{1, 1, 1}, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, S.Len())
	assert.Equal(t, [3]float64{5, 0, 0}, S.Lattice.Vec(0))
	assert.Equal(t, 2.5, S.Coords.At(1, 0))
}
