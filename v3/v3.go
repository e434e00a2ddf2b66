/*
 * v3.go, part of goxtal.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the coordinates of a point in 3D space.
//It must be able to implement any gonum matrix interface.
type Matrix struct {
	*mat.Dense
}

//NewMatrix returns a Matrix with 3 columns built from data, which is read in
//row-major order. It returns an error if the length of data is not divisible
//by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	if rows == 0 {
		return nil, Error{"Empty input slice", []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other
//dimension. It panics if vecs is smaller than 1, as gonum does not allow
//empty matrices.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs < 1 {
		panic(ErrNotEnoughElements)
	}
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//Dense2Matrix wraps a gonum dense matrix into a Matrix. The data is shared,
//not copied.
func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of F. Changes in the view are
//reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and c columns.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//SetMatrix copies A into the receiver starting from the ith vector and jth
//column. It panics if A does not fit.
func (F *Matrix) SetMatrix(i, j int, A *Matrix) {
	ar, ac := A.Dims()
	const fc = 3
	if ar+i > F.NVecs() || ac+j > fc {
		panic(ErrShape)
	}
	for k := 0; k < ar; k++ {
		row := A.RawRowView(k)
		for l := 0; l < ac; l++ {
			F.Set(k+i, j+l, row[l])
		}
	}
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the arguments
//is also the receiver. The gonum function compares A (a mat.Dense) against F
//(a Matrix) and would not know that internally F.Dense==A.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	if C, ok := B.(*Matrix); ok {
		B = C.Dense
	}
	F.Dense.Mul(A, B)
}

//AddVec adds the vector vec to each vector of A, putting the result on the
//receiver. It panics if the shapes are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < ar; i++ {
		a := A.RawRowView(i)
		for j := 0; j < 3; j++ {
			F.Set(i, j, a[j]+v[j])
		}
	}
}

//SubVec subtracts the vector vec from each vector of A, putting the result on
//the receiver. It panics if the shapes are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < ar; i++ {
		a := A.RawRowView(i)
		for j := 0; j < 3; j++ {
			F.Set(i, j, a[j]-v[j])
		}
	}
}

//Cross puts the cross product of the first vectors of a and b in the first
//vector of F. It panics on empty matrices.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Dot returns the dot product between the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() < 1 || B.NVecs() < 1 {
		panic(ErrNotEnoughElements)
	}
	a := F.RawRowView(0)
	b := B.RawRowView(0)
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

//Norm returns the Frobenius norm of F, which for a 1x3 Matrix is the length
//of the vector.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Unit puts in the receiver the first vector of A scaled to unit length.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Copy(A)
	}
	norm := 1.0 / F.Norm()
	F.Scale(norm, F.Dense)
}

//Row fills dst with the ith row of F and returns it. If dst is nil a new
//slice is allocated.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	copy(dst, F.RawRowView(i))
	return dst
}

//String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}

//Errors

//Error is the v3 error type. It carries a "decoration" slice with the names
//of the functions in the calling stack.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice. If dec is empty it just returns the
//current value.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics. For recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goxtal/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("goxtal/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("goxtal/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("goxtal/v3: Dimension mismatch")
)
