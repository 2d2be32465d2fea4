/*
 * doc.go, part of goconformer.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goconformer is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package xyz reads and writes multi-geometry XYZ files, read either
//sequentially, through a trajectory interface, or eagerly, into a
//geometry set. Files whose names end in .gz or .zst/.zstd are
//compressed and decompressed transparently.

/******************** Format *******************************************

Each geometry block has a line with the number of atoms, a comment line,
and one line per atom with the element symbol and the x, y and z
cartesian coordinates, in Angstrom, as decimal numbers. Anything after
the third coordinate in an atom line is ignored. A file concatenates one
or more such blocks. Blank lines are tolerated between blocks, but not
inside them. All the blocks of a file, and all the files of one load,
must carry the same atoms, in the same order.

The comment line is mandatory as a line but its content is free, and may
be empty. Simulation packages use it in incompatible ways, so nothing in
it is required: plain text becomes the label of the geometry. Metadata
is recovered when the comment contains it in the key = value form:

  TRAJ = 1 | Time = 3.0 fs | E = -155.02 a.u.

TRAJ (an integer) is the number of the trajectory the geometry belongs
to and Time (a decimal number) its time. The keys are case-sensitive and
the equals sign is required; the separators between fields and any other
fields are ignored. When absent, the trajectory number defaults to 0 and
the time to the index of the block within its file, restarting on each
file of a multi-file load.

***********************************************************************/

package xyz
