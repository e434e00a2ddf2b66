/*
 * plane.go, part of goxtal.
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
	"math"
	"sort"

	xtal "github.com/goxtal/xtal"
)

//cellEdges are the 12 edges of the fractional unit cube, as (start, direction)
//pairs.
var cellEdges = [12][2][3]float64{
	{{0, 0, 0}, {1, 0, 0}}, {{0, 0, 0}, {0, 1, 0}}, {{0, 0, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, 1, 0}}, {{1, 0, 0}, {0, 0, 1}},
	{{0, 1, 0}, {1, 0, 0}}, {{0, 1, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}}, {{0, 0, 1}, {0, 1, 0}},
	{{1, 1, 0}, {0, 0, 1}}, {{1, 0, 1}, {0, 1, 0}}, {{0, 1, 1}, {1, 0, 0}},
}

//PlanePolygon intersects the plane h*x + k*y + l*z = shift (fractional
//coordinates) with the unit cell and returns the resulting polygon as
//Cartesian vertices, ordered by angle around the centroid so a host can draw
//or measure it directly. It returns nil when the plane misses the cell or
//degenerates to fewer than three vertices, and an InvalidInput error for the
//(0,0,0) index.
func PlanePolygon(m Miller, lat *xtal.Lattice, shift float64) ([][3]float64, error) {
	if m.Zero() {
		return nil, xtal.NewError(xtal.InvalidInput, "PlanePolygon", "Miller indices cannot be (0,0,0)")
	}
	h := float64(m.H)
	k := float64(m.K)
	l := float64(m.L)

	var points [][3]float64
	for _, e := range cellEdges {
		start, dir := e[0], e[1]
		dd := h*dir[0] + k*dir[1] + l*dir[2]
		if math.Abs(dd) < 1e-6 {
			continue //edge parallel to the plane
		}
		ds := h*start[0] + k*start[1] + l*start[2]
		t := (shift - ds) / dd
		if t < -1e-3 || t > 1+1e-3 {
			continue
		}
		points = append(points, [3]float64{
			start[0] + t*dir[0],
			start[1] + t*dir[1],
			start[2] + t*dir[2],
		})
	}
	if len(points) < 3 {
		return nil, nil
	}

	//Order by angle about the centroid, in the plane spanned by two
	//directions orthogonal to (h,k,l).
	var centroid [3]float64
	for _, p := range points {
		for i := 0; i < 3; i++ {
			centroid[i] += p[i]
		}
	}
	for i := 0; i < 3; i++ {
		centroid[i] /= float64(len(points))
	}
	n := [3]float64{h, k, l}
	nlen := math.Sqrt(dot3f(n, n))
	for i := range n {
		n[i] /= nlen
	}
	ref := [3]float64{1, 0, 0}
	if math.Abs(n[0]) >= 0.9 {
		ref = [3]float64{0, 1, 0}
	}
	u := cross3(n, ref)
	ulen := math.Sqrt(dot3f(u, u))
	for i := range u {
		u[i] /= ulen
	}
	w := cross3(n, u)

	angle := func(p [3]float64) float64 {
		d := [3]float64{p[0] - centroid[0], p[1] - centroid[1], p[2] - centroid[2]}
		return math.Atan2(dot3f(d, w), dot3f(d, u))
	}
	sort.Slice(points, func(i, j int) bool { return angle(points[i]) < angle(points[j]) })

	//Drop near-coincident neighbors (cell corners are hit by several edges).
	var uniq [][3]float64
	for _, p := range points {
		if len(uniq) > 0 {
			q := uniq[len(uniq)-1]
			if math.Abs(p[0]-q[0]) < 1e-5 && math.Abs(p[1]-q[1]) < 1e-5 && math.Abs(p[2]-q[2]) < 1e-5 {
				continue
			}
		}
		uniq = append(uniq, p)
	}
	if len(uniq) > 1 {
		first, last := uniq[0], uniq[len(uniq)-1]
		if math.Abs(first[0]-last[0]) < 1e-5 && math.Abs(first[1]-last[1]) < 1e-5 && math.Abs(first[2]-last[2]) < 1e-5 {
			uniq = uniq[:len(uniq)-1]
		}
	}
	if len(uniq) < 3 {
		return nil, nil
	}

	out := make([][3]float64, len(uniq))
	for i, p := range uniq {
		out[i] = lat.CartVec(p)
	}
	return out, nil
}
