/*
 * geomset.go, part of goconformer.
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
	"fmt"
	"sort"

	v3 "github.com/rmera/goconformer/v3"
	"gonum.org/v1/gonum/mat"
)

// Meta holds the metadata of one geometry: the number of the trajectory
// it came from, its time in fs, and a free-text label. The fields are
// mutable after loading. Changing them does not trigger any re-validation
// of the set containing the geometry.
type Meta struct {
	Traj  int
	Time  float64
	Label string
}

// DefaultMeta returns the metadata for a geometry at the given zero-based
// position within its source, for when no metadata can be obtained from
// the source itself: trajectory 0, time equal to the position, and a
// label naming the position.
func DefaultMeta(index int) *Meta {
	return &Meta{Traj: 0, Time: float64(index), Label: fmt.Sprintf("Geometry %d", index)}
}

// GeomSet is a set of geometries for the same atoms, plus per-geometry
// metadata. Every geometry has the same number of atoms and the same
// element in each position, so the flattened coordinates of the geometries
// are feature vectors of a fixed dimension. The set enforces that
// invariant on every addition.
type GeomSet struct {
	coords   []*v3.Matrix
	meta     []*Meta
	elements []string
}

// NewGeomSet returns an empty geometry set for the given elements, one
// symbol per atom, in atom order.
func NewGeomSet(elements []string) *GeomSet {
	G := new(GeomSet)
	G.elements = elements
	G.coords = make([]*v3.Matrix, 0, 100)
	G.meta = make([]*Meta, 0, 100)
	return G
}

// Len returns the number of geometries in the set.
func (G *GeomSet) Len() int {
	return len(G.coords)
}

// NAtoms returns the number of atoms of each geometry in the set.
func (G *GeomSet) NAtoms() int {
	return len(G.elements)
}

// Elements returns the element symbols shared by all geometries of the
// set, in atom order. The returned slice is the set's own.
func (G *GeomSet) Elements() []string {
	return G.elements
}

// Coords returns the coordinates of the ith geometry of the set. It
// panics if i is out of range.
func (G *GeomSet) Coords(i int) *v3.Matrix {
	return G.coords[i]
}

// Meta returns the metadata record of the ith geometry. The returned
// pointer is the set's own record, so the caller can overwrite its fields
// in place. It panics if i is out of range.
func (G *GeomSet) Meta(i int) *Meta {
	return G.meta[i]
}

// Append adds a geometry to the set. The geometry must have as many
// atoms as the set. A nil m gets the defaults for the geometry's position.
func (G *GeomSet) Append(coord *v3.Matrix, m *Meta) error {
	if coord == nil {
		err := new(CError)
		err.msg = "goconformer: nil coordinates given"
		err.Decorate("Append")
		return err
	}
	if coord.NVecs() != len(G.elements) {
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: geometry with %d atoms appended to a set with %d atoms per geometry", coord.NVecs(), len(G.elements))
		err.Decorate("Append")
		return err
	}
	if m == nil {
		m = DefaultMeta(len(G.coords))
	}
	G.coords = append(G.coords, coord)
	G.meta = append(G.meta, m)
	return nil
}

// Extend appends all geometries of B, in order, to the receiver. B must
// have the same atom count and the same element in every position.
func (G *GeomSet) Extend(B *GeomSet) error {
	if len(B.elements) != len(G.elements) {
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: cannot concatenate sets with %d and %d atoms per geometry", len(G.elements), len(B.elements))
		err.Decorate("Extend")
		return err
	}
	for i, v := range G.elements {
		if B.elements[i] != v {
			err := new(CError)
			err.msg = fmt.Sprintf("goconformer: cannot concatenate sets: atom %d is %s in one set and %s in the other", i, v, B.elements[i])
			err.Decorate("Extend")
			return err
		}
	}
	G.coords = append(G.coords, B.coords...)
	G.meta = append(G.meta, B.meta...)
	return nil
}

// FeatureMatrix returns a matrix with one row per geometry, each row the
// flattened coordinates (x0,y0,z0,x1,y1,z1,...) of that geometry. This is
// the input shape the clustering engines take. It returns nil for an
// empty set.
func (G *GeomSet) FeatureMatrix() *mat.Dense {
	if len(G.coords) == 0 {
		return nil
	}
	natoms := len(G.elements)
	r := mat.NewDense(len(G.coords), 3*natoms, nil)
	for i, c := range G.coords {
		for a := 0; a < natoms; a++ {
			r.Set(i, 3*a, c.At(a, 0))
			r.Set(i, 3*a+1, c.At(a, 1))
			r.Set(i, 3*a+2, c.At(a, 2))
		}
	}
	return r
}

// TrajIDs returns the sorted distinct trajectory ids present in the set's
// metadata.
func (G *GeomSet) TrajIDs() []int {
	seen := make(map[int]bool)
	ret := make([]int, 0, 10)
	for _, m := range G.meta {
		if !seen[m.Traj] {
			seen[m.Traj] = true
			ret = append(ret, m.Traj)
		}
	}
	sort.Ints(ret)
	return ret
}

// TimeRange returns the smallest and largest time in the set's metadata.
// It returns zeros for an empty set.
func (G *GeomSet) TimeRange() (float64, float64) {
	if len(G.meta) == 0 {
		return 0, 0
	}
	min, max := G.meta[0].Time, G.meta[0].Time
	for _, m := range G.meta[1:] {
		if m.Time < min {
			min = m.Time
		}
		if m.Time > max {
			max = m.Time
		}
	}
	return min, max
}

// String returns a one-line description of the set.
func (G *GeomSet) String() string {
	return fmt.Sprintf("geometry set: %d geometries, %d atoms each", len(G.coords), len(G.elements))
}
