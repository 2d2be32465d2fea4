/*
 * puckering_test.go, part of goconformer.
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
	"math"
	"testing"

	v3 "github.com/rmera/goconformer/v3"
)

//Generates rings with known Cremer-Pople parameters and checks that
//measuring them recovers amplitude and angles.
func TestPuckerRoundTrip(Te *testing.T) {
	eng := CPEngine{}
	indexes := []int{1, 2, 3, 4, 5, 6}
	cases := [][3]float64{
		{0.55, 90, 0},    //boat
		{0.55, 90, 30},   //twist-boat
		{0.45, 54.7356103, 120}, //an envelope
		{0.67, 105, 333},
		{0.30, 160, 78},
	}
	for _, c := range cases {
		ring, err := RingFromPucker(c[0], c[1]*math.Pi/180, c[2], 6)
		if err != nil {
			Te.Fatal(err)
		}
		q, theta, phi, err := eng.Pucker(ring, indexes)
		if err != nil {
			Te.Fatal(err)
		}
		fmt.Println("want", c, "got", q, theta*180/math.Pi, phi)
		if math.Abs(q-c[0]) > 1e-9 {
			Te.Errorf("q: want %f, got %f", c[0], q)
		}
		if math.Abs(theta*180/math.Pi-c[1]) > 1e-7 {
			Te.Errorf("theta: want %f deg, got %f deg", c[1], theta*180/math.Pi)
		}
		if math.Abs(phi-c[2]) > 1e-7 {
			Te.Errorf("phi: want %f, got %f", c[2], phi)
		}
	}
	//at the poles phi is undefined, so only q and theta are checked
	for _, t := range []float64{0, 180} {
		ring, err := RingFromPucker(0.57, t*math.Pi/180, 0, 6)
		if err != nil {
			Te.Fatal(err)
		}
		q, theta, _, err := eng.Pucker(ring, indexes)
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(q-0.57) > 1e-9 || math.Abs(theta*180/math.Pi-t) > 1e-7 {
			Te.Errorf("chair: want q 0.57 theta %f, got %f %f", t, q, theta*180/math.Pi)
		}
	}
}

func TestPuckerRoundTrip5(Te *testing.T) {
	eng := CPEngine{}
	indexes := []int{1, 2, 3, 4, 5}
	for _, phi := range []float64{0, 18, 100, 351} {
		ring, err := RingFromPucker(0.38, math.Pi/2, phi, 5)
		if err != nil {
			Te.Fatal(err)
		}
		q, theta, gphi, err := eng.Pucker(ring, indexes)
		if err != nil {
			Te.Fatal(err)
		}
		fmt.Println("5-ring", phi, "->", q, theta, gphi)
		if math.Abs(q-0.38) > 1e-9 {
			Te.Errorf("q: want 0.38, got %f", q)
		}
		if math.Abs(theta-math.Pi/2) > 1e-9 {
			Te.Errorf("theta of an odd ring must be pi/2, got %f", theta)
		}
		if math.Abs(gphi-phi) > 1e-7 {
			Te.Errorf("phi: want %f, got %f", phi, gphi)
		}
	}
}

//A flat ring has no puckering at all.
func TestPuckerFlat(Te *testing.T) {
	ring, err := RingFromPucker(0, math.Pi/2, 0, 6)
	if err != nil {
		Te.Fatal(err)
	}
	q, _, _, err := CPEngine{}.Pucker(ring, []int{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if q > 1e-10 {
		Te.Errorf("flat ring got q %g", q)
	}
}

func TestClassify(Te *testing.T) {
	cases := []struct {
		theta, phi float64
		want       string
	}{
		{0, 123, "1C4"},
		{180, 7, "4C1"},
		{90, 0, "14B"},
		{90, 29, "1S5"},
		{88, 299, "B36"},
		{54, 119, "3E"},
		{57, 152, "3H4"},
		{125, 208, "2H1"},
		{128, 239, "2E"},
	}
	for _, c := range cases {
		got := Classify6(c.theta, c.phi)
		if got != c.want {
			Te.Errorf("Classify6(%f, %f): want %s, got %s", c.theta, c.phi, c.want, got)
		}
	}
	cases5 := []struct {
		phi  float64
		want string
	}{
		{0, "1E"},
		{17, "1T2"},
		{90, "3T4"},
		{355, "1E"},
		{-10, "1T5"},
	}
	for _, c := range cases5 {
		got := Classify5(c.phi)
		if got != c.want {
			Te.Errorf("Classify5(%f): want %s, got %s", c.phi, c.want, got)
		}
	}
}

//Each canonical conformer, generated at its own coordinates, must
//classify as itself.
func TestClassifyCanonical(Te *testing.T) {
	eng := CPEngine{}
	for _, v := range conformers6 {
		ring, err := RingFromPucker(0.55, v.theta*math.Pi/180, v.phi, 6)
		if err != nil {
			Te.Fatal(err)
		}
		_, theta, phi, err := eng.Pucker(ring, []int{1, 2, 3, 4, 5, 6})
		if err != nil {
			Te.Fatal(err)
		}
		got, err := eng.Classify(theta*180/math.Pi, phi, 6)
		if err != nil {
			Te.Fatal(err)
		}
		if got != v.name {
			Te.Errorf("conformer %s measured back as %s", v.name, got)
		}
	}
	for i, name := range conformers5 {
		ring, err := RingFromPucker(0.38, math.Pi/2, float64(i)*18, 5)
		if err != nil {
			Te.Fatal(err)
		}
		_, theta, phi, err := eng.Pucker(ring, []int{1, 2, 3, 4, 5})
		if err != nil {
			Te.Fatal(err)
		}
		got, err := eng.Classify(theta*180/math.Pi, phi, 5)
		if err != nil {
			Te.Fatal(err)
		}
		if got != name {
			Te.Errorf("conformer %s measured back as %s", name, got)
		}
	}
}

func TestCheckRing(Te *testing.T) {
	if err := CheckRing([]int{0, 1, 2, 3, 4, 5}, 38); err != nil {
		Te.Error(err)
	}
	if err := CheckRing([]int{0, 1}, 38); err == nil {
		Te.Error("a 2-atom ring passed validation")
	}
	//an index equal to the atom count is the first out-of-range value
	for size := 3; size < 9; size++ {
		ring := make([]int, size)
		for i := range ring {
			ring[i] = i
		}
		ring[size-1] = size
		err := CheckRing(ring, size)
		if err == nil {
			Te.Errorf("out of range index passed validation for size %d", size)
			continue
		}
		rerr, ok := err.(*RingError)
		if !ok {
			Te.Errorf("want a *RingError, got %T", err)
			continue
		}
		fmt.Println("as expected:", rerr.Error())
	}
	if err := CheckRing([]int{0, 1, 1}, 38); err == nil {
		Te.Error("a repeated index passed validation")
	}
	if err := CheckRing([]int{-1, 1, 2}, 38); err == nil {
		Te.Error("a negative index passed validation")
	}
	ring := []int{4, 2, 7}
	ob := OneBased(ring)
	for i, v := range ob {
		if v != ring[i]+1 {
			Te.Errorf("OneBased(%v) came out as %v", ring, ob)
		}
	}
}

func TestRingPuckers(Te *testing.T) {
	elements := []string{"C", "C", "C", "C", "C", "C"}
	G := NewGeomSet(elements)
	good1, err := RingFromPucker(0.55, math.Pi/2, 60, 6)
	if err != nil {
		Te.Fatal(err)
	}
	good2, err := RingFromPucker(0.57, 0, 0, 6)
	if err != nil {
		Te.Fatal(err)
	}
	//all atoms on a line, so no mean plane can be defined
	bad := v3.Zeros(6)
	for i := 0; i < 6; i++ {
		bad.Set(i, 0, float64(i))
	}
	for _, c := range []*v3.Matrix{good1, bad, good2} {
		if err := G.Append(c, nil); err != nil {
			Te.Fatal(err)
		}
	}
	list, rep, err := RingPuckers(G, []int{0, 1, 2, 3, 4, 5}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("report:", rep.Attempted, rep.Succeeded, rep.Skipped)
	if rep.Attempted != 3 || rep.Succeeded != 2 {
		Te.Errorf("want 3 attempted and 2 succeeded, got %d and %d", rep.Attempted, rep.Succeeded)
	}
	if len(rep.Skipped) != 1 || rep.Skipped[0] != 1 {
		Te.Errorf("want geometry 1 skipped, got %v", rep.Skipped)
	}
	if len(list) != 2 {
		Te.Fatalf("want 2 rows, got %d", len(list))
	}
	if list[0].GeomIndex != 0 || list[1].GeomIndex != 2 {
		Te.Errorf("wrong geometry indexes: %v", list.GeomIndexes())
	}
	if list[0].Conf != "B25" || list[1].Conf != "1C4" {
		Te.Errorf("wrong conformations: %v", list.Confs())
	}
	//a bad ring specification fails the whole batch
	_, _, err = RingPuckers(G, []int{0, 1, 6}, nil)
	if err == nil {
		Te.Error("an out-of-range ring passed")
	}
}
