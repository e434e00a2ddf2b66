/*
 * supercell.go, part of goxtal.
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

	v3 "github.com/goxtal/xtal/v3"
)

//Replicate scales a unit cell into an nx x ny x nz supercell. Every atom is
//cloned once per integer offset (i,j,k), shifted by the Cartesian translation
//i*a + j*b + k*c; the new lattice vectors are the old ones scaled per axis.
//Translated copies are disjoint by construction, so no deduplication or
//tolerance is involved, and the output holds exactly nx*ny*nz times the
//input atom count. Atom indexes are reassigned densely in generation order
//(offset-major, x outermost, then the original atom order within each offset).
//
//Replication factors smaller than 1 are rejected as InvalidInput: a zero
//factor would produce a cell with no volume along that axis.
func Replicate(S *Structure, nx, ny, nz int) (*Structure, error) {
	if S == nil {
		panic(ErrNilStructure)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, NewError(InvalidInput, "Replicate",
			fmt.Sprintf("replication factors must be positive, got %dx%dx%d", nx, ny, nz))
	}
	natoms := S.Len()
	total := natoms * nx * ny * nz
	atoms := make([]*Atom, 0, total)
	var coords *v3.Matrix
	if natoms > 0 {
		coords = v3.Zeros(total)
	}

	block := 0
	shifted := v3.Zeros(max(natoms, 1))
	tvec := v3.Zeros(1)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				for _, at := range S.Atoms {
					atoms = append(atoms, at.Copy())
				}
				if natoms == 0 {
					continue
				}
				t := S.Lattice.CartVec([3]float64{float64(i), float64(j), float64(k)})
				tvec.Set(0, 0, t[0])
				tvec.Set(0, 1, t[1])
				tvec.Set(0, 2, t[2])
				shifted.AddVec(S.Coords, tvec)
				coords.SetMatrix(block*natoms, 0, shifted)
				block++
			}
		}
	}

	out, err := NewStructure(S.Lattice.Scaled(nx, ny, nz), atoms, coords)
	if err != nil {
		return nil, errDecorate(err, "Replicate")
	}
	out.Formula = fmt.Sprintf("%s (%dx%dx%d Supercell)", S.Formula, nx, ny, nz)
	return out, nil
}
