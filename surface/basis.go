/*
 * basis.go, part of goxtal.
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
	"sort"

	xtal "github.com/goxtal/xtal"
)

//DefaultRange is the default bound of the integer searches: candidate triples
//are enumerated in [-DefaultRange, DefaultRange]^3. It is enough for the
//Miller indices encountered in practice; a SearchExhausted error tells the
//caller to enlarge it.
const DefaultRange = 4

//Basis is a surface-aligned integer basis for a Miller plane, expressed in
//the index basis of the original lattice: U and V lie in the plane, W is the
//out-of-plane stacking vector.
type Basis struct {
	U, V, W [3]int
}

type candidate struct {
	t    [3]int
	len2 float64 //physical Cartesian squared length
}

//PlaneBasis searches [-rng,rng]^3 for the surface basis of the plane m.
//
//U is the in-plane triple (h*u + k*v + l*w = 0) with the globally shortest
//physical length through the lattice; V is the shortest in-plane triple not
//parallel to U. W is the shortest triple NOT in the plane; the stricter
//h*u + k*v + l*w = 1 rule has no solution when gcd(h,k,l) > 1, so this
//implementation does not use it. Ties are broken deterministically, toward
//the first lattice direction, and every chosen triple is sign-canonical
//(first nonzero component positive for U and V; positive plane-equation side
//for W), so cutting along an existing axis reproduces that axis rather than
//its negative.
//
//A rng below 1 falls back to DefaultRange.
func PlaneBasis(m Miller, lat *xtal.Lattice, rng int) (*Basis, error) {
	if m.Zero() {
		return nil, xtal.NewError(xtal.InvalidInput, "PlaneBasis", "Miller indices cannot be (0,0,0)")
	}
	if rng < 1 {
		rng = DefaultRange
	}

	var inPlane []candidate
	for u := -rng; u <= rng; u++ {
		for v := -rng; v <= rng; v++ {
			for w := -rng; w <= rng; w++ {
				t := [3]int{u, v, w}
				if t == ([3]int{}) {
					continue
				}
				if m.eval(t) != 0 {
					continue
				}
				t = canonSign(t)
				inPlane = append(inPlane, candidate{t: t, len2: physLen2(t, lat)})
			}
		}
	}
	sort.Slice(inPlane, func(i, j int) bool { return lessCand(inPlane[i], inPlane[j]) })

	if len(inPlane) < 2 {
		return nil, xtal.NewError(xtal.SearchExhausted, "PlaneBasis",
			"no surface vectors found - try smaller indices or a larger search range")
	}
	U := inPlane[0].t
	var V [3]int
	foundV := false
	for _, c := range inPlane[1:] {
		if crossInt(U, c.t) != ([3]int{}) {
			V = c.t
			foundV = true
			break
		}
	}
	if !foundV {
		return nil, xtal.NewError(xtal.SearchExhausted, "PlaneBasis",
			"no independent surface vector pair - try smaller indices or a larger search range")
	}

	var W [3]int
	foundW := false
	best := candidate{}
	for u := -rng; u <= rng; u++ {
		for v := -rng; v <= rng; v++ {
			for w := -rng; w <= rng; w++ {
				t := [3]int{u, v, w}
				if m.eval(t) == 0 {
					continue
				}
				if m.eval(t) < 0 { //stack along the positive side of the plane
					t = [3]int{-t[0], -t[1], -t[2]}
				}
				c := candidate{t: t, len2: physLen2(t, lat)}
				if !foundW || lessCand(c, best) {
					best = c
					foundW = true
				}
			}
		}
	}
	if !foundW {
		return nil, xtal.NewError(xtal.SearchExhausted, "PlaneBasis",
			"no stacking vector found - try a larger search range")
	}
	W = best.t
	return &Basis{U: U, V: V, W: W}, nil
}

//lessCand orders candidates by physical length, breaking exact ties by
//reverse lexicographic comparison of the integer triples so that axis-aligned
//triples like (1,0,0) win over (0,1,0) and results are deterministic.
func lessCand(a, b candidate) bool {
	if a.len2 != b.len2 {
		return a.len2 < b.len2
	}
	for i := 0; i < 3; i++ {
		if a.t[i] != b.t[i] {
			return a.t[i] > b.t[i]
		}
	}
	return false
}

//physLen2 is the squared Cartesian length of an integer triple through the
//lattice; the integer norm would misrank candidates in non-cubic cells.
func physLen2(t [3]int, lat *xtal.Lattice) float64 {
	c := lat.CartVec([3]float64{float64(t[0]), float64(t[1]), float64(t[2])})
	return c[0]*c[0] + c[1]*c[1] + c[2]*c[2]
}

//canonSign flips a triple so its first nonzero component is positive.
func canonSign(t [3]int) [3]int {
	for _, x := range t {
		if x > 0 {
			return t
		}
		if x < 0 {
			return [3]int{-t[0], -t[1], -t[2]}
		}
	}
	return t
}

func crossInt(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
