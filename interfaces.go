/*
 * interfaces.go, part of goconformer.
 *
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

package conformer

import (
	v3 "github.com/rmera/goconformer/v3"
	"gonum.org/v1/gonum/mat"
)

// Traj is the interface for geometry sources that are read one geometry at
// a time, such as the multi-geometry XYZ readers in the traj subpackages.
type Traj interface {

	//Is the source ready to be read?
	Readable() bool

	//reads the next geometry into output, or discards it if output is nil.
	Next(output *v3.Matrix) error

	//Returns the number of atoms per geometry
	Len() int
}

// Puckerer is the interface for ring-puckering engines. The analysis
// entry points only orchestrate calls to a Puckerer; the default
// implementation is CPEngine, and any other can be put behind this
// interface.
type Puckerer interface {

	//Pucker returns the Cremer-Pople puckering parameters for one ring.
	//ring contains the coordinates of the ring atoms in traversal order,
	//and indexes the one-based indexes of those atoms in the geometry they
	//were taken from, in the same order. It returns the total puckering
	//amplitude (in the distance unit of the input, normally Angstroms),
	//the polar angle theta in radians and the azimuthal angle phi in
	//degrees, in [0,360).
	Pucker(ring *v3.Matrix, indexes []int) (float64, float64, float64, error)

	//Classify returns the conformation code for a ring of the given size
	//with the given puckering angles, both in degrees. For 5-membered
	//rings theta is ignored.
	Classify(theta, phi float64, size int) (string, error)
}

// ClusterModel is the minimal common surface of the fitted models returned
// by the clustering engines in the cluster subpackage: the per-geometry
// cluster assignments and the number of clusters found. The concrete
// models carry more (centers, inertia) and are returned as-is by the
// analysis entry points.
type ClusterModel interface {
	Labels() []int
	NClusters() int
}

// Clusterer is the interface for clustering engines, which fit a model to
// a matrix with one row per observation.
type Clusterer interface {
	Fit(data *mat.Dense) (ClusterModel, error)
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TrajError is the interface for errors in geometry files
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's

}
