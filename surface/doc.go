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

//Package surface cuts crystallographic surfaces out of periodic structures.
//Given Miller indices (h,k,l) it searches for the shortest surface-aligned
//integer basis, remaps the atoms of the original cell into the new primitive
//cell, stacks the requested number of layers and pads the stack with vacuum
//along the surface normal, producing a finite slab as a new xtal.Structure.
//
//It also provides the plane geometry a host application needs to display a
//Miller plane (Cartesian normal, interplanar spacing and the plane/unit-cell
//intersection polygon); the drawing itself is the host's business.
package surface
