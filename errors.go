/*
 * errors.go, part of goxtal.
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

import "errors"

//Kind classifies the recoverable failures of the engine. Every typed error
//returned by a transform carries exactly one Kind.
type Kind int

const (
	//InvalidInput covers bad parameters: zero Miller indexes, non-positive
	//thickness or replication factors, negative vacuum, empty structures.
	InvalidInput Kind = iota + 1
	//DegenerateGeometry covers singular lattices and transformation matrices.
	DegenerateGeometry
	//SearchExhausted means a bounded integer search found no qualifying
	//basis vector. The caller may retry with a larger search range.
	SearchExhausted
	//NoAtomsMapped means the geometry was valid but no atom image fell
	//inside the new cell. This points to an insufficient remap radius, not
	//to a user error.
	NoAtomsMapped
)

//Error is the interface for errors that all packages in this library
//implement. The Decorate method adds information to the error as it is passed
//up, without changing its type or wrapping it in something else. The
//decoration slice should contain the names of the functions in the calling
//stack, plus, for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Kind() Kind
	Decorate(string) []string
}

//XError is the concrete error used across goxtal.
type XError struct {
	kind    Kind
	message string
	deco    []string
}

//NewError returns an XError of the given kind. caller is the name of the
//function producing the error and becomes the first decoration.
func NewError(kind Kind, caller, message string) *XError {
	return &XError{kind: kind, message: message, deco: []string{caller}}
}

//Error returns a string with an error message.
func (err *XError) Error() string {
	return err.message
}

//Kind returns the classification of the error.
func (err *XError) Kind() Kind {
	return err.kind
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice. If passed an empty string it just
//returns the current value.
func (err *XError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//IsKind reports whether err is a goxtal error of the given kind.
func IsKind(err error, k Kind) bool {
	var xerr Error
	if errors.As(err, &xerr) {
		return xerr.Kind() == k
	}
	return false
}

//errDecorate adds the caller's name to a goxtal error before returning it.
//It leaves foreign errors alone.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//PanicMsg is a message used for panics on truly impossible internal states,
//like calling a method on a nil object. For bad user input use XError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilStructure = PanicMsg("goxtal: nil Structure")
	ErrNilAtom      = PanicMsg("goxtal: attempted to copy a nil Atom")
	ErrNilLattice   = PanicMsg("goxtal: nil Lattice")
	ErrOutOfRange   = PanicMsg("goxtal: atom index out of range")
)
