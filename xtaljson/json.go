/*
 * json.go, part of goxtal.
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
	"encoding/json"
	"io"

	xtal "github.com/goxtal/xtal"
	v3 "github.com/goxtal/xtal/v3"
)

//Atom is a ready-to-serialize container for one atom.
type Atom struct {
	Symbol string
	Index  int
	Coords []float64 //Cartesian Å, length 3
}

//Structure is a ready-to-serialize container for a full structure.
type Structure struct {
	Lattice []float64 //9 values, row-major (rows a, b, c)
	Atoms   []*Atom
	Formula string
}

//Options is a transform request passed in by the calling program. Zeroed
//fields mean "not requested"; it is up to the host protocol to send one
//request per message.
type Options struct {
	SymOps    []string  //operators for a symmetry expansion
	Cell      []float64 //a, b, c, alpha, beta, gamma for the expansion
	Supercell [3]int    //replication factors
	Miller    [3]int    //surface to cut
	Thickness int
	Vacuum    float64
}

//NewStructure packs an engine structure for serialization.
func NewStructure(S *xtal.Structure) *Structure {
	J := &Structure{Formula: S.Formula}
	lat := S.Lattice.Dense()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			J.Lattice = append(J.Lattice, lat.At(i, j))
		}
	}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		J.Atoms = append(J.Atoms, &Atom{
			Symbol: at.Symbol,
			Index:  at.Index,
			Coords: S.Coords.Row(nil, i),
		})
	}
	return J
}

//Structure unpacks the container into an engine structure, revalidating the
//lattice and coordinate invariants.
func (J *Structure) Structure() (*xtal.Structure, *Error) {
	lat, err := xtal.NewLattice(J.Lattice)
	if err != nil {
		return nil, NewError("Structure", err)
	}
	atoms := make([]*xtal.Atom, len(J.Atoms))
	var coords *v3.Matrix
	if len(J.Atoms) > 0 {
		coords = v3.Zeros(len(J.Atoms))
	}
	for i, at := range J.Atoms {
		atoms[i] = &xtal.Atom{Symbol: at.Symbol, Index: i}
		if len(at.Coords) != 3 {
			return nil, NewError("Structure", xtal.NewError(xtal.InvalidInput, "xtaljson.Structure", "atom coordinates must have 3 components"))
		}
		for j := 0; j < 3; j++ {
			coords.Set(i, j, at.Coords[j])
		}
	}
	S, err := xtal.NewStructure(lat, atoms, coords)
	if err != nil {
		return nil, NewError("Structure", err)
	}
	S.Formula = J.Formula
	return S, nil
}

//Send encodes the container and writes it to out.
func (J *Structure) Send(out io.Writer) *Error {
	if err := json.NewEncoder(out).Encode(J); err != nil {
		return NewError("Structure.Send", err)
	}
	return nil
}

//DecodeStructure reads one serialized structure from in and unpacks it.
func DecodeStructure(in io.Reader) (*xtal.Structure, *Error) {
	J := new(Structure)
	if err := json.NewDecoder(in).Decode(J); err != nil {
		return nil, NewError("DecodeStructure", err)
	}
	return J.Structure()
}

//DecodeOptions reads one transform request from in.
func DecodeOptions(in io.Reader) (*Options, *Error) {
	O := new(Options)
	if err := json.NewDecoder(in).Decode(O); err != nil {
		return nil, NewError("DecodeOptions", err)
	}
	return O, nil
}

//Error is an easily JSON-serializable error, for reporting failures back to
//the calling program.
type Error struct {
	deco     []string
	IsError  bool   //false only on the zero value
	Function string //which function gave the error
	Message  string //the error itself
}

//NewError builds a serializable error from any engine error.
func NewError(function string, err error) *Error {
	return &Error{IsError: true, Function: function, Message: err.Error()}
}

//Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice. If passed an empty string it just
//returns the current value.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//Marshal serializes the error itself. It panics on failure, as there is
//nothing sensible left to report.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(J.Message + " - " + err2.Error())
	}
	return ret
}
