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
 * goconformer is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package conformer is the main package of the goConformer library, a set of
convenience functions to analyze the ring conformations sampled along
molecular dynamics and related trajectories.


	**goConformer Capabilities**


    Reads and writes multi-geometry XYZ files, plain or gzip/zstd
	compressed, tolerating the comment-line conventions of different
	simulation packages (TRAJ/Time metadata, arbitrary text or nothing
	at all) and recovering the metadata when present.

    Reads trajectories either sequentially, one geometry at a time
	through a trajectory interface, or eagerly into a geometry set.

    Loads whole dynamics runs from trees of TRAJ1, TRAJ2, ... folders,
	concatenating them in numeric order.

    Computes the Cremer-Pople puckering parameters (amplitude Q and the
	angles theta and phi) for rings of 3 or more atoms, and classifies
	5- and 6-membered rings against the canonical conformers (chairs,
	boats, twists, envelopes and half-chairs).

    Generates ring geometries with prescribed puckering parameters.

    Clusters the geometries of a trajectory by k-means, hierarchical or
	density-based (DBSCAN) clustering on their flattened coordinates.

    Writes and reads back fixed-width classified tables, and reports
	summary statistics and conformation histograms.

    Plots puckering results: theta vs phi maps, projections of the
	Cremer-Pople sphere and conformation histograms (uses the gonum
	plotting library).


goConformer implements its own matrix type for coordinates, in the v3
subpackage, based on gonum. Each row of a v3.Matrix represents one point
in space.*/
package conformer
