/*
 * json_test.go, part of goxtal.
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

package xtaljson

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	xtal "github.com/goxtal/xtal"
	v3 "github.com/goxtal/xtal/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quartzLike(t *testing.T) *xtal.Structure {
	t.Helper()
	lat, err := xtal.NewLattice([]float64{4, 0, 0, 2, 3.46, 0, 0, 0, 5})
	require.NoError(t, err)
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	require.NoError(t, err)
	S, err := xtal.NewStructure(lat, []*xtal.Atom{{Symbol: "Si"}, {Symbol: "O"}, {Symbol: "O"}}, coords)
	require.NoError(t, err)
	S.ComputeFormula()
	return S
}

func TestStructureRoundTrip(t *testing.T) {
	S := quartzLike(t)
	var buf bytes.Buffer
	require.Nil(t, NewStructure(S).Send(&buf))

	back, jerr := DecodeStructure(&buf)
	require.Nil(t, jerr)
	require.Equal(t, S.Len(), back.Len())
	assert.Equal(t, S.Formula, back.Formula)
	for i := 0; i < 3; i++ {
		assert.Equal(t, S.Lattice.Vec(i), back.Lattice.Vec(i))
	}
	for i := 0; i < S.Len(); i++ {
		assert.Equal(t, S.Atom(i).Symbol, back.Atom(i).Symbol)
		assert.Equal(t, i, back.Atom(i).Index)
		for j := 0; j < 3; j++ {
			assert.Equal(t, S.Coords.At(i, j), back.Coords.At(i, j))
		}
	}
}

func TestStructureRejectsBadPayload(t *testing.T) {
	//a singular lattice must not survive deserialization
	J := &Structure{Lattice: []float64{1, 0, 0, 2, 0, 0, 0, 0, 1}}
	_, jerr := J.Structure()
	require.NotNil(t, jerr)
	assert.True(t, jerr.IsError)

	J = &Structure{
		Lattice: []float64{4, 0, 0, 0, 4, 0, 0, 0, 4},
		Atoms:   []*Atom{{Symbol: "H", Coords: []float64{1, 2}}},
	}
	_, jerr = J.Structure()
	require.NotNil(t, jerr)
	assert.Contains(t, jerr.Message, "3 components")
}

func TestDecodeOptions(t *testing.T) {
	in := strings.NewReader(`{"SymOps":["x,y,z","-x,-y,z"],"Cell":[5,5,5,90,90,90],"Miller":[1,1,0],"Thickness":3,"Vacuum":10}`)
	O, jerr := DecodeOptions(in)
	require.Nil(t, jerr)
	assert.Equal(t, []string{"x,y,z", "-x,-y,z"}, O.SymOps)
	assert.Equal(t, [3]int{1, 1, 0}, O.Miller)
	assert.Equal(t, 3, O.Thickness)
	assert.Equal(t, 10.0, O.Vacuum)
	assert.Equal(t, [3]int{}, O.Supercell, "absent fields stay zero")
}

func TestErrorMarshal(t *testing.T) {
	jerr := NewError("Cut", errors.New("no atoms mapped into the slab cell"))
	jerr.Decorate("handler")
	b := jerr.Marshal()
	assert.Contains(t, string(b), `"IsError":true`)
	assert.Contains(t, string(b), "no atoms mapped")
	assert.Equal(t, "no atoms mapped into the slab cell", jerr.Error())
	assert.Equal(t, []string{"handler"}, jerr.Decorate(""))
}
