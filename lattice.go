/*
 * lattice.go, part of goxtal.
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
	"math"

	v3 "github.com/goxtal/xtal/v3"
	"gonum.org/v1/gonum/mat"
)

//DetEps is the threshold under which a lattice or transformation determinant
//is considered zero.
const DetEps = 1e-6

//Deg2Rad and Rad2Deg convert between degrees and radians.
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

//Lattice holds the three repeat vectors of a periodic cell as the rows of a
//3x3 matrix, in Cartesian Å. A Lattice is owned by the Structure holding it;
//transforms always build a new one instead of mutating in place.
type Lattice struct {
	m *mat.Dense //3x3, rows are a, b, c
}

//NewLattice builds a Lattice from 9 values in row-major order (first row is
//the a vector, and so on). It returns a DegenerateGeometry error if the cell
//volume is (numerically) zero.
func NewLattice(data []float64) (*Lattice, error) {
	if len(data) != 9 {
		return nil, NewError(InvalidInput, "NewLattice", fmt.Sprintf("need 9 values for a lattice, got %d", len(data)))
	}
	d := make([]float64, 9)
	copy(d, data)
	L := &Lattice{m: mat.NewDense(3, 3, d)}
	if math.Abs(L.Det()) < DetEps {
		return nil, NewError(DegenerateGeometry, "NewLattice", "lattice is singular (volume is zero)")
	}
	return L, nil
}

//Det returns the determinant of the lattice matrix, i.e. the signed cell
//volume.
func (L *Lattice) Det() float64 {
	if L == nil || L.m == nil {
		panic(ErrNilLattice)
	}
	return det3(L.m)
}

//Volume returns the cell volume in Å^3.
func (L *Lattice) Volume() float64 {
	return math.Abs(L.Det())
}

//Vec returns a copy of the ith lattice vector (0 is a, 1 is b, 2 is c).
func (L *Lattice) Vec(i int) [3]float64 {
	if i < 0 || i > 2 {
		panic(ErrOutOfRange)
	}
	r := L.m.RawRowView(i)
	return [3]float64{r[0], r[1], r[2]}
}

//Dense returns a copy of the lattice matrix.
func (L *Lattice) Dense() *mat.Dense {
	return mat.DenseCopyOf(L.m)
}

//Copy returns a deep copy of the Lattice.
func (L *Lattice) Copy() *Lattice {
	if L == nil {
		panic(ErrNilLattice)
	}
	return &Lattice{m: mat.DenseCopyOf(L.m)}
}

//Cart converts a set of fractional coordinates to Cartesian, returning a new
//matrix. With row vectors the conversion is cart = frac * L.
func (L *Lattice) Cart(frac *v3.Matrix) *v3.Matrix {
	out := v3.Zeros(frac.NVecs())
	out.Mul(frac, L.m)
	return out
}

//CartVec converts a single fractional triple to Cartesian.
func (L *Lattice) CartVec(f [3]float64) [3]float64 {
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[j] = f[0]*L.m.At(0, j) + f[1]*L.m.At(1, j) + f[2]*L.m.At(2, j)
	}
	return out
}

//Frac converts a set of Cartesian coordinates to fractional ones. It returns
//a DegenerateGeometry error if the lattice cannot be inverted.
func (L *Lattice) Frac(cart *v3.Matrix) (*v3.Matrix, error) {
	inv, err := L.Inverse()
	if err != nil {
		return nil, errDecorate(err, "Frac")
	}
	out := v3.Zeros(cart.NVecs())
	out.Mul(cart, inv)
	return out, nil
}

//Inverse returns the inverse of the lattice matrix.
func (L *Lattice) Inverse() (*mat.Dense, error) {
	inv := new(mat.Dense)
	if err := inv.Inverse(L.m); err != nil {
		return nil, NewError(DegenerateGeometry, "Inverse", "lattice is singular (volume is zero)")
	}
	return inv, nil
}

//Scaled returns a new Lattice with each vector scaled independently per axis:
//a by nx, b by ny and c by nz. This is a diagonal scaling, not a general
//basis change.
func (L *Lattice) Scaled(nx, ny, nz int) *Lattice {
	n := [3]float64{float64(nx), float64(ny), float64(nz)}
	out := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, L.m.At(i, j)*n[i])
		}
	}
	return &Lattice{m: out}
}

//Params recovers the six cell parameters (lengths in Å, angles in degrees)
//from the lattice vectors.
func (L *Lattice) Params() CellParams {
	a := L.Vec(0)
	b := L.Vec(1)
	c := L.Vec(2)
	la := norm3(a)
	lb := norm3(b)
	lc := norm3(c)
	alpha := math.Acos(dot3(b, c)/(lb*lc)) * Rad2Deg
	beta := math.Acos(dot3(a, c)/(la*lc)) * Rad2Deg
	gamma := math.Acos(dot3(a, b)/(la*lb)) * Rad2Deg
	return CellParams{A: la, B: lb, C: lc, Alpha: alpha, Beta: beta, Gamma: gamma}
}

//CellParams are the six conventional cell parameters: the lengths of the
//three lattice vectors in Å and the angles between them in degrees (Alpha
//between b and c, Beta between a and c, Gamma between a and b).
type CellParams struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

//Lattice builds the Cartesian lattice for the parameters using the standard
//crystallographic convention: a along x, b in the xy-plane, c completing a
//right-handed basis through the volume factor
//v = sqrt(1 - cos²α - cos²β - cos²γ + 2 cosα cosβ cosγ).
//It returns a DegenerateGeometry error if the parameters do not describe a
//cell of finite volume.
func (p CellParams) Lattice() (*Lattice, error) {
	ca := math.Cos(p.Alpha * Deg2Rad)
	cb := math.Cos(p.Beta * Deg2Rad)
	cg := math.Cos(p.Gamma * Deg2Rad)
	sg := math.Sin(p.Gamma * Deg2Rad)
	if math.Abs(sg) < DetEps {
		return nil, NewError(DegenerateGeometry, "CellParams.Lattice", "gamma angle makes a and b collinear")
	}
	v2 := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if v2 <= 0 || math.IsNaN(v2) {
		return nil, NewError(DegenerateGeometry, "CellParams.Lattice", "cell parameters give a non-positive volume factor")
	}
	v := math.Sqrt(v2)
	data := []float64{
		p.A, 0, 0,
		p.B * cg, p.B * sg, 0,
		p.C * cb, p.C * (ca - cb*cg) / sg, p.C * v / sg,
	}
	L, err := NewLattice(data)
	if err != nil {
		return nil, errDecorate(err, "CellParams.Lattice")
	}
	return L, nil
}

//det3 returns the determinant of a 3x3 matrix. It panics if the matrix is
//not 3x3.
func det3(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(PanicMsg("goxtal: determinants are only available for 3x3 matrices"))
	}
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}

func norm3(a [3]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
