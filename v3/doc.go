/*
 * doc.go, part of goxtal.
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

//Package v3 implements a container for sets of 3D vectors, used throughout
//goxtal for atomic coordinates and lattice rows. A Matrix is an Nx3 dense
//matrix where each row is the Cartesian (or fractional) coordinates of one
//point. The implementation wraps gonum's mat.Dense, so a *Matrix can be used
//wherever a gonum mat.Matrix is expected.
package v3
