/*
 * puckering.go, part of goconformer.
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

//Measure and generate ring puckering conformations for rings of 3 or more
//atoms. Based on Cremer and Pople, J Am Chem Soc, 96, 1354, (1975).

package conformer

import (
	"fmt"
	"math"

	v3 "github.com/rmera/goconformer/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point (i.e. not actually zero) zeros.

// CheckRing validates a ring specification against a geometry with natoms
// atoms: the ring must have at least 3 indexes, all of them zero-based,
// distinct and in [0,natoms). The order of the indexes is the ring
// traversal order, which the puckering phases depend on, so callers must
// give the indexes along the ring, not in an arbitrary order.
func CheckRing(ring []int, natoms int) error {
	if len(ring) < 3 {
		return newRingError(fmt.Sprintf("a ring needs at least 3 atoms, %d given", len(ring)), ring, "CheckRing")
	}
	seen := make(map[int]bool, len(ring))
	for _, v := range ring {
		if v < 0 || v >= natoms {
			return newRingError(fmt.Sprintf("index %d out of range for a geometry with %d atoms", v, natoms), ring, "CheckRing")
		}
		if seen[v] {
			return newRingError(fmt.Sprintf("index %d is repeated", v), ring, "CheckRing")
		}
		seen[v] = true
	}
	return nil
}

// OneBased returns a new slice with every index of ring incremented by
// one, in the same order. The puckering engines take one-based indexes,
// so this is the bridge from the zero-based convention used everywhere
// else in the library.
func OneBased(ring []int) []int {
	ret := make([]int, len(ring))
	for i, v := range ring {
		ret[i] = v + 1
	}
	return ret
}

// CPEngine is the default Puckerer, implementing the Cremer-Pople
// puckering coordinates and the classification against the canonical
// conformers of 5- and 6-membered rings.
type CPEngine struct{}

// Pucker returns the Cremer-Pople puckering parameters for the ring
// whose coordinates are given in traversal order. indexes contains the
// one-based indexes of the ring atoms in their geometry, in the same
// order; they take no part in the math, but their count and convention
// are checked. It returns the total puckering amplitude Q in the distance
// unit of the coordinates, the polar angle theta in radians and the
// azimuthal angle phi in degrees, in [0,360). For rings that are not
// 6-membered, theta comes from the m=2 and, in even-sized rings, the
// m=N/2 amplitudes, so it is pi/2 for odd-sized rings.
func (P CPEngine) Pucker(ring *v3.Matrix, indexes []int) (float64, float64, float64, error) {
	if ring == nil {
		err := new(CError)
		err.msg = "goconformer: nil ring coordinates"
		err.Decorate("Pucker")
		return 0, 0, 0, err
	}
	N := ring.NVecs()
	if N < 3 {
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: a ring needs at least 3 atoms, %d given", N)
		err.Decorate("Pucker")
		return 0, 0, 0, err
	}
	if len(indexes) != N {
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: %d indexes given for a ring of %d atoms", len(indexes), N)
		err.Decorate("Pucker")
		return 0, 0, 0, err
	}
	for _, v := range indexes {
		if v < 1 {
			err := new(CError)
			err.msg = fmt.Sprintf("goconformer: ring indexes must be one-based, got %d", v)
			err.Decorate("Pucker")
			return 0, 0, 0, err
		}
	}
	fN := float64(N)
	center := v3.Zeros(1)
	center.Centroid(ring)
	centered := v3.Zeros(N)
	centered.SubVec(ring, center)
	//The mean plane of the ring is defined by the normal to the two
	//combination vectors below, eq. 9-11 of the Cremer-Pople paper.
	Rp := v3.Zeros(1)
	Rpp := v3.Zeros(1)
	tmp := v3.Zeros(1)
	for j := 0; j < N; j++ {
		row := centered.VecView(j)
		tmp.Scale(math.Sin(2*math.Pi*float64(j)/fN), row)
		Rp.Add(Rp, tmp)
		tmp.Scale(math.Cos(2*math.Pi*float64(j)/fN), row)
		Rpp.Add(Rpp, tmp)
	}
	normal := v3.Zeros(1)
	normal.Cross(Rp, Rpp)
	if normal.Norm(2) <= appzero {
		err := new(CError)
		err.msg = "goconformer: degenerate ring: no mean plane could be defined"
		err.Decorate("Pucker")
		return 0, 0, 0, err
	}
	normal.Unit(normal)
	//Out of plane displacements, and from them, the puckering
	//amplitude/phase pairs (eq. 12-14).
	z := make([]float64, N)
	Q2 := 0.0
	for j := 0; j < N; j++ {
		z[j] = centered.VecView(j).Dot(normal)
		Q2 += z[j] * z[j]
	}
	Q := math.Sqrt(Q2)
	if math.IsNaN(Q) || math.IsInf(Q, 0) {
		err := new(CError)
		err.msg = "goconformer: non-finite coordinates in ring"
		err.Decorate("Pucker")
		return 0, 0, 0, err
	}
	var q2, phi2, qhalf float64
	if N >= 5 {
		cospart := 0.0
		sinpart := 0.0
		for j := 0; j < N; j++ {
			cospart += z[j] * math.Cos(4*math.Pi*float64(j)/fN)
			sinpart -= z[j] * math.Sin(4*math.Pi*float64(j)/fN)
		}
		cospart *= math.Sqrt(2 / fN)
		sinpart *= math.Sqrt(2 / fN)
		q2 = math.Sqrt(cospart*cospart + sinpart*sinpart)
		if q2 > appzero {
			phi2 = math.Atan2(sinpart, cospart)
		}
	}
	if N%2 == 0 {
		sum := 0.0
		sign := 1.0
		for j := 0; j < N; j++ {
			sum += sign * z[j]
			sign = -sign
		}
		qhalf = sum / math.Sqrt(fN)
	}
	theta := math.Pi / 2 //the equator, where all the puckering of odd rings lives
	if N%2 == 0 {
		theta = math.Atan2(q2, qhalf)
	}
	phi := phi2 * 180 / math.Pi
	if phi < 0 {
		phi += 360
	}
	return Q, theta, phi, nil
}

// Classify returns the canonical conformation code for a ring of the
// given size whose puckering angles are theta and phi, both in degrees.
// Only 5- and 6-membered rings have classification tables; other sizes
// return an error.
func (P CPEngine) Classify(theta, phi float64, size int) (string, error) {
	switch size {
	case 5:
		return Classify5(phi), nil
	case 6:
		return Classify6(theta, phi), nil
	default:
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: no conformation table for rings of %d atoms", size)
		err.Decorate("Classify")
		return "", err
	}
}

// RingFromPucker generates the coordinates of a size-membered ring with
// exactly the given Cremer-Pople parameters: amplitude q (Angstroms),
// polar angle theta (radians) and azimuthal angle phi (degrees). The
// ring atoms lie on a regular polygon of the given bond length (1.54 A,
// the C-C single bond, when not given) displaced along z; measuring the
// returned ring recovers q, theta and phi to floating-point precision.
// For odd sizes only the equatorial component q*sin(theta) can be
// realized, so callers normally give theta = pi/2 for those.
func RingFromPucker(q, theta, phi float64, size int, bond ...float64) (*v3.Matrix, error) {
	if size < 3 {
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: a ring needs at least 3 atoms, %d requested", size)
		err.Decorate("RingFromPucker")
		return nil, err
	}
	if q < 0 {
		err := new(CError)
		err.msg = fmt.Sprintf("goconformer: the puckering amplitude must be non-negative, got %f", q)
		err.Decorate("RingFromPucker")
		return nil, err
	}
	b := 1.54
	if len(bond) > 0 {
		b = bond[0]
	}
	fN := float64(size)
	r := b / (2 * math.Sin(math.Pi/fN)) //circumradius of the regular polygon
	q2 := q * math.Sin(theta)
	qhalf := q * math.Cos(theta)
	phirad := phi * math.Pi / 180
	ret := v3.Zeros(size)
	sign := 1.0
	for j := 0; j < size; j++ {
		z := 0.0
		if size >= 5 {
			z += math.Sqrt(2/fN) * q2 * math.Cos(phirad+4*math.Pi*float64(j)/fN)
		}
		if size%2 == 0 {
			z += math.Sqrt(1/fN) * qhalf * sign
			sign = -sign
		}
		//the polygon goes clockwise seen from +z, so the Cremer-Pople
		//mean-plane normal of the result points towards +z and the
		//phases measured back match the ones given.
		ret.Set(j, 0, r*math.Cos(2*math.Pi*float64(j)/fN))
		ret.Set(j, 1, -r*math.Sin(2*math.Pi*float64(j)/fN))
		ret.Set(j, 2, z)
	}
	return ret, nil
}

// RingPuckers runs the Cremer-Pople analysis of the given ring over every
// geometry of the set, with the given engine (the default CPEngine if eng
// is nil). The ring specification is zero-based and is validated before
// any geometry is processed. Geometries for which the engine fails are
// skipped, not returned as rows, and accounted for in the report; an
// error is returned only for problems with the input as a whole.
func RingPuckers(G *GeomSet, ring []int, eng Puckerer) (PuckerList, *PuckerReport, error) {
	if G == nil || G.Len() == 0 {
		err := new(CError)
		err.msg = "goconformer: nil or empty geometry set"
		err.Decorate("RingPuckers")
		return nil, nil, err
	}
	if err := CheckRing(ring, G.NAtoms()); err != nil {
		return nil, nil, errDecorate(err, "RingPuckers")
	}
	if eng == nil {
		eng = CPEngine{}
	}
	indexes := OneBased(ring)
	size := len(ring)
	ringcoords := v3.Zeros(size)
	ret := make(PuckerList, 0, G.Len())
	rep := new(PuckerReport)
	for i := 0; i < G.Len(); i++ {
		rep.Attempted++
		ringcoords.SomeVecs(G.Coords(i), ring)
		q, theta, phi, err := eng.Pucker(ringcoords, indexes)
		if err != nil {
			rep.Skipped = append(rep.Skipped, i)
			continue
		}
		conf, cerr := eng.Classify(theta*180/math.Pi, phi, size)
		if cerr != nil {
			if size == 5 || size == 6 {
				rep.Skipped = append(rep.Skipped, i)
				continue
			}
			conf = "" //no classification for this ring size
		}
		rep.Succeeded++
		ret = append(ret, &Pucker{GeomIndex: i, Q: q, Theta: theta, Phi: phi, Conf: conf})
	}
	return ret, rep, nil
}
