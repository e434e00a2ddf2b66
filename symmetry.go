/*
 * symmetry.go, part of goxtal.
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
	"strconv"
	"strings"

	v3 "github.com/goxtal/xtal/v3"
)

//SymmetryDedupEps is the per-axis fractional tolerance under which two
//symmetry-generated positions are considered the same site. The periodic
//image on the other side of the cell counts as a match too.
const SymmetryDedupEps = 0.001

//Site is a symmetry-unique atom as read from a structure file: an element
//symbol plus fractional coordinates.
type Site struct {
	Symbol string
	Frac   [3]float64
}

//A symTerm is one signed term of a symmetry-operator expression: either one
//of the coordinates x, y, z (unit coefficient only, which covers all standard
//equivalent-position strings) or a constant.
type symTerm struct {
	sign  float64
	coord int //0..2 for x,y,z; -1 for a constant
	value float64
}

//SymOp is one symmetry operation given as three algebraic expressions over
//x, y and z, e.g. "-x+1/2,y,-z". SymOps are ephemeral: they are parsed,
//applied during expansion and discarded.
type SymOp struct {
	terms [3][]symTerm
}

//ParseSymOp parses an operator string. It returns an error for anything it
//cannot evaluate: a number of comma-separated expressions different from 3,
//or a term that is neither a coordinate nor a decimal or p/q constant.
func ParseSymOp(s string) (*SymOp, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, NewError(InvalidInput, "ParseSymOp",
			fmt.Sprintf("operator %q: want 3 comma-separated expressions, got %d", s, len(parts)))
	}
	op := new(SymOp)
	for i, part := range parts {
		terms, err := parseExpr(part)
		if err != nil {
			return nil, errDecorate(err, "ParseSymOp")
		}
		op.terms[i] = terms
	}
	return op, nil
}

//parseExpr scans an expression left to right, splitting on +/- boundaries
//while keeping the sign as part of each term.
func parseExpr(expr string) ([]symTerm, error) {
	s := strings.ToLower(strings.ReplaceAll(expr, " ", ""))
	if s == "" {
		return nil, NewError(InvalidInput, "parseExpr", "empty expression")
	}
	var terms []symTerm
	var cur strings.Builder
	for _, c := range s {
		if (c == '+' || c == '-') && cur.Len() > 0 {
			t, err := parseTerm(cur.String())
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
			cur.Reset()
		}
		cur.WriteRune(c)
	}
	t, err := parseTerm(cur.String())
	if err != nil {
		return nil, err
	}
	return append(terms, t), nil
}

func parseTerm(term string) (symTerm, error) {
	t := symTerm{sign: 1}
	s := term
	if strings.HasPrefix(s, "-") {
		t.sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	switch {
	case strings.Contains(s, "x"):
		t.coord = 0
		return t, nil
	case strings.Contains(s, "y"):
		t.coord = 1
		return t, nil
	case strings.Contains(s, "z"):
		t.coord = 2
		return t, nil
	}
	t.coord = -1
	if idx := strings.Index(s, "/"); idx >= 0 {
		num, err1 := strconv.ParseFloat(s[:idx], 64)
		den, err2 := strconv.ParseFloat(s[idx+1:], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return t, NewError(InvalidInput, "parseTerm", fmt.Sprintf("bad fraction %q", term))
		}
		t.value = num / den
		return t, nil
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return t, NewError(InvalidInput, "parseTerm", fmt.Sprintf("bad term %q", term))
	}
	t.value = val
	return t, nil
}

//Apply evaluates the operation at the fractional position p.
func (O *SymOp) Apply(p [3]float64) [3]float64 {
	var out [3]float64
	for i, terms := range O.terms {
		for _, t := range terms {
			if t.coord >= 0 {
				out[i] += t.sign * p[t.coord]
			} else {
				out[i] += t.sign * t.value
			}
		}
	}
	return out
}

//wrapFrac wraps a fractional coordinate into [0,1) with a floor-based modulo,
//which handles negative inputs correctly (plain truncation does not).
func wrapFrac(x float64) float64 {
	w := x - math.Floor(x)
	if w >= 1 { //possible for tiny negative x through rounding
		w = 0
	}
	return w
}

//sameSite reports whether two wrapped fractional positions coincide within
//eps on every axis, counting periodic matches across the cell boundary.
func sameSite(a, b [3]float64, eps float64) bool {
	for i := 0; i < 3; i++ {
		d := math.Abs(a[i] - b[i])
		if d >= eps && (1-d) >= eps {
			return false
		}
	}
	return true
}

//Expand replicates the base sites with every symmetry operator and returns
//the full periodic atom set of one unit cell as a Structure with Cartesian
//coordinates. If ops is empty, or no operator in it can be parsed, the
//identity "x,y,z" is used, so the base sites always survive. Operator strings
//that cannot be parsed are skipped, never fatal: structure files in the wild
//are not always standard-conforming, and a partial expansion is more useful
//than no expansion. Duplicate positions (within SymmetryDedupEps, first seen
//wins) are discarded.
//
//The only error condition is a parameter set that does not describe a valid
//cell. An empty base list yields a structure with zero atoms.
func Expand(base []Site, ops []string, cp CellParams) (*Structure, error) {
	lat, err := cp.Lattice()
	if err != nil {
		return nil, errDecorate(err, "Expand")
	}
	if len(ops) == 0 {
		ops = []string{"x,y,z"}
	}
	parsed := make([]*SymOp, 0, len(ops))
	for _, s := range ops {
		op, err := ParseSymOp(s)
		if err != nil {
			continue
		}
		parsed = append(parsed, op)
	}
	if len(parsed) == 0 { //every operator was garbage; keep the base sites
		op, _ := ParseSymOp("x,y,z")
		parsed = append(parsed, op)
	}

	var symbols []string
	var fracs [][3]float64
	for _, site := range base {
		for _, op := range parsed {
			p := op.Apply(site.Frac)
			w := [3]float64{wrapFrac(p[0]), wrapFrac(p[1]), wrapFrac(p[2])}
			dup := false
			for _, prev := range fracs {
				if sameSite(prev, w, SymmetryDedupEps) {
					dup = true
					break
				}
			}
			if !dup {
				symbols = append(symbols, site.Symbol)
				fracs = append(fracs, w)
			}
		}
	}

	atoms := make([]*Atom, len(symbols))
	for i, sym := range symbols {
		atoms[i] = &Atom{Symbol: sym, Index: i}
	}
	var coords *v3.Matrix
	if len(fracs) > 0 {
		fm := v3.Zeros(len(fracs))
		for i, f := range fracs {
			fm.Set(i, 0, f[0])
			fm.Set(i, 1, f[1])
			fm.Set(i, 2, f[2])
		}
		coords = lat.Cart(fm)
	}
	S, err := NewStructure(lat, atoms, coords)
	if err != nil {
		return nil, errDecorate(err, "Expand")
	}
	S.ComputeFormula()
	return S, nil
}
