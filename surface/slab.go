/*
 * slab.go, part of goxtal.
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
	"math"
	"runtime"
	"sort"

	xtal "github.com/goxtal/xtal"
	v3 "github.com/goxtal/xtal/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//SlabDedupEps is the per-axis fractional tolerance of the slab transform:
//atoms closer than this in the new basis are the same atom, and positions
//this far outside [0,1) still count as inside the primitive cell.
const SlabDedupEps = 1e-4

//Cutter cuts finite, vacuum-padded slabs out of periodic structures. The
//zero value is not usable; get one from NewCutter.
type Cutter struct {
	rng     int
	workers int
	log     zerolog.Logger
}

//Option configures a Cutter.
type Option func(*Cutter)

//WithRange sets the bound of the integer basis search. The default,
//DefaultRange, handles common Miller indices; raise it when Cut returns a
//SearchExhausted error.
func WithRange(n int) Option {
	return func(c *Cutter) { c.rng = n }
}

//WithWorkers sets how many goroutines the atom remapping uses. Values below
//1 mean GOMAXPROCS. Parallelism never changes results: candidates are sorted
//before deduplication.
func WithWorkers(n int) Option {
	return func(c *Cutter) { c.workers = n }
}

//WithLogger sets a logger for search diagnostics. The default discards
//everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Cutter) { c.log = l }
}

//NewCutter returns a Cutter with the given options applied over the
//defaults.
func NewCutter(opts ...Option) *Cutter {
	c := &Cutter{rng: DefaultRange, workers: 0, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

//mapped is one atom image that landed inside the new primitive cell.
type mapped struct {
	sym string
	f   [3]float64 //fractional, new basis
}

//Cut builds a slab of the surface m from S: thickness stacked layers of the
//surface-aligned primitive cell, padded with vacuum Å of empty space along
//the surface normal. S is not modified; atom indexes in the result are
//reassigned densely.
//
//Validation failures are InvalidInput errors; a singular lattice or
//transformation is DegenerateGeometry; an empty basis search is
//SearchExhausted; and NoAtomsMapped means the remap radius missed every atom,
//which is a tuning bug rather than a user error.
func (C *Cutter) Cut(S *xtal.Structure, m Miller, thickness int, vacuum float64) (*xtal.Structure, error) {
	if m.Zero() {
		return nil, xtal.NewError(xtal.InvalidInput, "Cut", "Miller indices cannot be (0,0,0)")
	}
	if thickness < 1 {
		return nil, xtal.NewError(xtal.InvalidInput, "Cut", fmt.Sprintf("thickness must be positive, got %d", thickness))
	}
	if vacuum < 0 {
		return nil, xtal.NewError(xtal.InvalidInput, "Cut", fmt.Sprintf("vacuum must be non-negative, got %g", vacuum))
	}
	if S == nil || S.Len() == 0 {
		return nil, xtal.NewError(xtal.InvalidInput, "Cut", "structure has no atoms")
	}
	if S.Volume() < xtal.DetEps {
		return nil, xtal.NewError(xtal.DegenerateGeometry, "Cut", "lattice is singular (volume is zero)")
	}

	basis, err := PlaneBasis(m, S.Lattice, C.rng)
	if err != nil {
		return nil, err
	}
	C.log.Debug().Str("miller", m.String()).
		Ints("u", basis.U[:]).Ints("v", basis.V[:]).Ints("w", basis.W[:]).
		Msg("surface basis found")

	//M has the basis triples as columns, in the original index basis.
	M := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		M.Set(i, 0, float64(basis.U[i]))
		M.Set(i, 1, float64(basis.V[i]))
		M.Set(i, 2, float64(basis.W[i]))
	}
	detM := math.Abs(mat.Det(M))
	if detM < xtal.DetEps {
		return nil, xtal.NewError(xtal.DegenerateGeometry, "Cut", "singular transformation for these indices")
	}
	Minv := new(mat.Dense)
	if err := Minv.Inverse(M); err != nil {
		return nil, xtal.NewError(xtal.DegenerateGeometry, "Cut", "singular transformation for these indices")
	}

	fracs, err := S.Lattice.Frac(S.Coords)
	if err != nil {
		return nil, errDecorate(err, "Cut")
	}

	prim, err := C.mapAtoms(S, fracs, Minv, detM)
	if err != nil {
		return nil, err
	}
	C.log.Debug().Int("atoms", len(prim)).Float64("det", detM).Msg("primitive slab cell populated")

	//Slab lattice: in-plane vectors unchanged, stacking vector scaled by
	//the layer count, then vacuum added along the surface normal.
	aRow := S.Lattice.CartVec(toFloat(basis.U))
	bRow := S.Lattice.CartVec(toFloat(basis.V))
	wRow := S.Lattice.CartVec(toFloat(basis.W))
	tf := float64(thickness)
	cOld := [3]float64{wRow[0] * tf, wRow[1] * tf, wRow[2] * tf}

	normal := cross3(aRow, bRow)
	nlen := math.Sqrt(dot3f(normal, normal))
	for i := range normal {
		normal[i] /= nlen
	}
	proj := dot3f(cOld, normal)
	if proj < 0 { //keep the vacuum on the same side as the stacking vector
		for i := range normal {
			normal[i] = -normal[i]
		}
		proj = -proj
	}
	cNew := [3]float64{
		cOld[0] + vacuum*normal[0],
		cOld[1] + vacuum*normal[1],
		cOld[2] + vacuum*normal[2],
	}
	//Vacuum grows the cell along the normal, not along c itself, so atom
	//z-fractions must shrink by the projected ratio to stay put.
	scale := proj / dot3f(cNew, normal)

	slabLat, err := xtal.NewLattice([]float64{
		aRow[0], aRow[1], aRow[2],
		bRow[0], bRow[1], bRow[2],
		cNew[0], cNew[1], cNew[2],
	})
	if err != nil {
		return nil, errDecorate(err, "Cut")
	}

	n := len(prim) * thickness
	fm := v3.Zeros(n)
	atoms := make([]*xtal.Atom, 0, n)
	row := 0
	for layer := 0; layer < thickness; layer++ {
		for _, p := range prim {
			fm.Set(row, 0, p.f[0])
			fm.Set(row, 1, p.f[1])
			fm.Set(row, 2, (p.f[2]+float64(layer))/tf*scale)
			atoms = append(atoms, &xtal.Atom{Symbol: p.sym})
			row++
		}
	}

	out, err := xtal.NewStructure(slabLat, atoms, slabLat.Cart(fm))
	if err != nil {
		return nil, errDecorate(err, "Cut")
	}
	out.Formula = fmt.Sprintf("Slab %s", m)
	return out, nil
}

//mapAtoms enumerates integer translations of the original lattice and keeps
//every atom image whose fractional coordinates in the new basis fall inside
//[0,1). The translations are independent, so the work is spread over worker
//goroutines; the merged candidate list is sorted before deduplication so the
//result does not depend on scheduling.
func (C *Cutter) mapAtoms(S *xtal.Structure, fracs *v3.Matrix, Minv *mat.Dense, detM float64) ([]mapped, error) {
	r := int(math.Ceil(math.Cbrt(detM))) + 2
	var shifts [][3]float64
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			for k := -r; k <= r; k++ {
				shifts = append(shifts, [3]float64{float64(i), float64(j), float64(k)})
			}
		}
	}

	natoms := S.Len()
	forig := make([][3]float64, natoms)
	for i := 0; i < natoms; i++ {
		row := fracs.RawRowView(i)
		forig[i] = [3]float64{row[0], row[1], row[2]}
	}

	workers := C.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(shifts) {
		workers = len(shifts)
	}
	chunk := (len(shifts) + workers - 1) / workers
	results := make([][]mapped, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(shifts) {
			hi = len(shifts)
		}
		g.Go(func() error {
			var local []mapped
			for _, shift := range shifts[lo:hi] {
				for i := 0; i < natoms; i++ {
					var fnew [3]float64
					inside := true
					for a := 0; a < 3; a++ {
						x := 0.0
						for b := 0; b < 3; b++ {
							x += Minv.At(a, b) * (forig[i][b] + shift[b])
						}
						if x < -SlabDedupEps || x >= 1-SlabDedupEps {
							inside = false
							break
						}
						fnew[a] = x
					}
					if inside {
						local = append(local, mapped{sym: S.Atom(i).Symbol, f: fnew})
					}
				}
			}
			results[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []mapped
	for _, res := range results {
		all = append(all, res...)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		for k := 2; k >= 0; k-- {
			if a.f[k] != b.f[k] {
				return a.f[k] < b.f[k]
			}
		}
		return a.sym < b.sym
	})

	var prim []mapped
	for _, c := range all {
		dup := false
		for _, p := range prim {
			if math.Abs(c.f[0]-p.f[0]) < SlabDedupEps &&
				math.Abs(c.f[1]-p.f[1]) < SlabDedupEps &&
				math.Abs(c.f[2]-p.f[2]) < SlabDedupEps {
				dup = true
				break
			}
		}
		if !dup {
			prim = append(prim, c)
		}
	}
	if len(prim) == 0 {
		return nil, xtal.NewError(xtal.NoAtomsMapped, "Cut", "no atoms mapped to slab - remap radius too small")
	}
	return prim, nil
}

func toFloat(t [3]int) [3]float64 {
	return [3]float64{float64(t[0]), float64(t[1]), float64(t[2])}
}

func dot3f(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

//errDecorate adds the caller's name to a goxtal error before returning it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(xtal.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
