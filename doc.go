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

//Package xtal provides structures for periodic crystals and transforms that
//derive new, geometrically valid structures from them: expansion of a
//symmetry-unique atom set into a full unit cell, replication into supercells,
//and (in the surface subpackage) cutting of arbitrary crystallographic
//surfaces into vacuum-padded slabs.
//
//A Structure couples a 3x3 row-vector Lattice (Cartesian Å) with an ordered
//atom list and an Nx3 coordinate matrix from the v3 subpackage. Transforms
//never mutate their input; they consume a Structure and produce a new one,
//with atom indexes reassigned densely so host applications can keep selecting
//atoms by index.
//
//The engine does no file I/O: callers hand it already-tokenized atom lists,
//raw symmetry-operator strings and cell parameters, and own whatever they do
//with the result.
package xtal
