/*
 * miller.go, part of goxtal.
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
	"fmt"

	xtal "github.com/goxtal/xtal"
	v3 "github.com/goxtal/xtal/v3"
)

//Miller is an integer triple (h,k,l) defining a family of lattice planes via
//h*x + k*y + l*z = const in fractional coordinates.
type Miller struct {
	H, K, L int
}

//Zero reports whether all three indices are zero, which does not define a
//plane.
func (m Miller) Zero() bool {
	return m.H == 0 && m.K == 0 && m.L == 0
}

//String returns the conventional (hkl) form.
func (m Miller) String() string {
	return fmt.Sprintf("(%d%d%d)", m.H, m.K, m.L)
}

//eval evaluates the plane equation h*u + k*v + l*w for an integer triple.
func (m Miller) eval(t [3]int) int {
	return m.H*t[0] + m.K*t[1] + m.L*t[2]
}

//Normal returns the Cartesian unit normal of the plane family in the given
//lattice, computed from the reciprocal direction h(b×c) + k(c×a) + l(a×b).
//It returns an InvalidInput error for the (0,0,0) index.
func (m Miller) Normal(lat *xtal.Lattice) (*v3.Matrix, error) {
	n, _, err := m.reciprocal(lat)
	if err != nil {
		return nil, err
	}
	n.Unit(n)
	return n, nil
}

//Spacing returns the interplanar distance d(hkl) in Å.
func (m Miller) Spacing(lat *xtal.Lattice) (float64, error) {
	_, glen, err := m.reciprocal(lat)
	if err != nil {
		return 0, err
	}
	return lat.Volume() / glen, nil
}

//reciprocal returns the unnormalized plane normal h(b×c)+k(c×a)+l(a×b) and
//its length, which equals V/d(hkl).
func (m Miller) reciprocal(lat *xtal.Lattice) (*v3.Matrix, float64, error) {
	if m.Zero() {
		return nil, 0, xtal.NewError(xtal.InvalidInput, "Miller.reciprocal", "Miller indices cannot be (0,0,0)")
	}
	a := lat.Vec(0)
	b := lat.Vec(1)
	c := lat.Vec(2)
	bxc := cross3(b, c)
	cxa := cross3(c, a)
	axb := cross3(a, b)
	h := float64(m.H)
	k := float64(m.K)
	l := float64(m.L)
	n := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		n.Set(0, j, h*bxc[j]+k*cxa[j]+l*axb[j])
	}
	return n, n.Norm(), nil
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
