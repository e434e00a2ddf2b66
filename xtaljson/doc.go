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

//Package xtaljson exchanges goxtal structures and transform requests with a
//host application (typically a GUI driving the engine) as JSON over any
//io.Writer/io.Reader pair. It is process-boundary interchange, not a
//crystallographic file format: the engine still never parses CIF, POSCAR or
//friends.
package xtaljson
