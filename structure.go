/*
 * structure.go, part of goxtal.
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

package xtal

import (
	"fmt"
	"sort"
	"strings"

	v3 "github.com/goxtal/xtal/v3"
)

//Atom contains the per-atom data except for the coordinates, which live in
//the Nx3 matrix of the Structure owning the atom.
type Atom struct {
	//Symbol is the element symbol, e.g. "Si".
	Symbol string
	//Index is the position of the atom in its structure. Transforms that
	//change atom count or order reassign it densely (0..N-1), so host
	//applications can keep selecting atoms by index.
	Index int
}

//Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	return &Atom{Symbol: A.Symbol, Index: A.Index}
}

//Structure is a periodic crystal: a lattice plus an ordered atom list with
//Cartesian coordinates. A Structure is immutable once produced; transforms
//consume one and produce a new one.
type Structure struct {
	Lattice *Lattice
	Atoms   []*Atom
	//Coords holds one row per atom, in Cartesian Å. It is nil if and only
	//if the structure has no atoms.
	Coords *v3.Matrix
	//Formula is an informational element:count label. It never affects
	//correctness; transforms may recompute it or append to it.
	Formula string
}

//NewStructure builds a Structure and checks its invariants: a non-degenerate
//lattice and agreement between the atom list and the coordinate matrix.
func NewStructure(lat *Lattice, atoms []*Atom, coords *v3.Matrix) (*Structure, error) {
	if lat == nil {
		return nil, NewError(InvalidInput, "NewStructure", "nil lattice")
	}
	if lat.Volume() < DetEps {
		return nil, NewError(DegenerateGeometry, "NewStructure", "lattice is singular (volume is zero)")
	}
	n := 0
	if coords != nil {
		n = coords.NVecs()
	}
	if n != len(atoms) {
		return nil, NewError(InvalidInput, "NewStructure",
			fmt.Sprintf("have %d atoms but %d coordinate rows", len(atoms), n))
	}
	S := &Structure{Lattice: lat, Atoms: atoms, Coords: coords}
	S.reindex()
	return S, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	if S == nil {
		panic(ErrNilStructure)
	}
	return len(S.Atoms)
}

//Atom returns the atom with index i. It panics if i is out of range.
func (S *Structure) Atom(i int) *Atom {
	if i < 0 || i >= S.Len() {
		panic(ErrOutOfRange)
	}
	return S.Atoms[i]
}

//Volume returns the cell volume in Å^3.
func (S *Structure) Volume() float64 {
	return S.Lattice.Volume()
}

//Copy returns a deep copy of the Structure.
func (S *Structure) Copy() *Structure {
	if S == nil {
		panic(ErrNilStructure)
	}
	atoms := make([]*Atom, len(S.Atoms))
	for i, at := range S.Atoms {
		atoms[i] = at.Copy()
	}
	var coords *v3.Matrix
	if S.Coords != nil {
		coords = v3.Zeros(S.Coords.NVecs())
		coords.Copy(S.Coords)
	}
	return &Structure{
		Lattice: S.Lattice.Copy(),
		Atoms:   atoms,
		Coords:  coords,
		Formula: S.Formula,
	}
}

//ComputeFormula rebuilds the formula label from the atom list, with elements
//sorted alphabetically and counts omitted when 1 (e.g. "O2Si"). It sets the
//Formula field and returns the new value.
func (S *Structure) ComputeFormula() string {
	counts := map[string]int{}
	for _, at := range S.Atoms {
		counts[at.Symbol]++
	}
	elements := make([]string, 0, len(counts))
	for el := range counts {
		elements = append(elements, el)
	}
	sort.Strings(elements)
	var b strings.Builder
	for _, el := range elements {
		b.WriteString(el)
		if counts[el] > 1 {
			fmt.Fprintf(&b, "%d", counts[el])
		}
	}
	S.Formula = b.String()
	return S.Formula
}

//reindex reassigns atom indexes densely in list order.
func (S *Structure) reindex() {
	for i, at := range S.Atoms {
		at.Index = i
	}
}
