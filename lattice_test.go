/*
 * lattice_test.go, part of goxtal.
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
	"math"
	"testing"

	v3 "github.com/goxtal/xtal/v3"
)

func TestCellParamsCubic(Te *testing.T) {
	lat, err := CellParams{A: 5, B: 5, C: 5, Alpha: 90, Beta: 90, Gamma: 90}.Lattice()
	if err != nil {
		Te.Fatal(err)
	}
	want := [3][3]float64{{5, 0, 0}, {0, 5, 0}, {0, 0, 5}}
	for i := 0; i < 3; i++ {
		got := lat.Vec(i)
		for j := 0; j < 3; j++ {
			if math.Abs(got[j]-want[i][j]) > 1e-10 {
				Te.Errorf("vector %d component %d: got %v want %v", i, j, got[j], want[i][j])
			}
		}
	}
	if math.Abs(lat.Det()-125) > 1e-9 {
		Te.Errorf("cubic determinant: got %v want 125", lat.Det())
	}
}

//TestCellParamsRoundTrip builds a triclinic lattice and recovers the
//parameters from it.
func TestCellParamsRoundTrip(Te *testing.T) {
	p := CellParams{A: 4.5, B: 3.2, C: 6.1, Alpha: 70, Beta: 95, Gamma: 110}
	lat, err := p.Lattice()
	if err != nil {
		Te.Fatal(err)
	}
	q := lat.Params()
	for _, pair := range [][2]float64{
		{p.A, q.A}, {p.B, q.B}, {p.C, q.C},
		{p.Alpha, q.Alpha}, {p.Beta, q.Beta}, {p.Gamma, q.Gamma},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-8 {
			Te.Errorf("parameter round trip: got %v want %v", pair[1], pair[0])
		}
	}
}

//TestFracCartRoundTrip uses a non-orthogonal cell.
func TestFracCartRoundTrip(Te *testing.T) {
	lat, err := NewLattice([]float64{4, 0, 0, 2, 3.46, 0, 0, 0, 5})
	if err != nil {
		Te.Fatal(err)
	}
	frac, err := v3.NewMatrix([]float64{0.333, 0.667, 0.25})
	if err != nil {
		Te.Fatal(err)
	}
	cart := lat.Cart(frac)
	back, err := lat.Frac(cart)
	if err != nil {
		Te.Fatal(err)
	}
	for j := 0; j < 3; j++ {
		if math.Abs(back.At(0, j)-frac.At(0, j)) > 1e-10 {
			Te.Errorf("round trip component %d: got %v want %v", j, back.At(0, j), frac.At(0, j))
		}
	}
	//and the single-vector conversion agrees with the matrix one
	single := lat.CartVec([3]float64{0.333, 0.667, 0.25})
	for j := 0; j < 3; j++ {
		if math.Abs(single[j]-cart.At(0, j)) > 1e-12 {
			Te.Errorf("CartVec disagrees with Cart on component %d", j)
		}
	}
}

func TestSingularLattice(Te *testing.T) {
	_, err := NewLattice([]float64{1, 0, 0, 2, 0, 0, 0, 0, 1})
	if err == nil {
		Te.Fatal("expected an error for a singular lattice")
	}
	if !IsKind(err, DegenerateGeometry) {
		Te.Errorf("expected DegenerateGeometry, got %v", err)
	}
	_, err = NewLattice([]float64{1, 0, 0})
	if !IsKind(err, InvalidInput) {
		Te.Errorf("expected InvalidInput for a short slice, got %v", err)
	}
}

func TestScaledVolume(Te *testing.T) {
	lat, err := NewLattice([]float64{3, 0, 0, 1, 4, 0, 0.5, 0.5, 5})
	if err != nil {
		Te.Fatal(err)
	}
	sc := lat.Scaled(2, 3, 1)
	if math.Abs(sc.Det()-lat.Det()*6) > 1e-9 {
		Te.Errorf("scaled determinant: got %v want %v", sc.Det(), lat.Det()*6)
	}
}
