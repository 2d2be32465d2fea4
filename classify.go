/*
 * classify.go, part of goconformer.
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

import "math"

//The canonical conformers of a 6-membered ring, as vertexes on the
//Cremer-Pople sphere. The names use the position of each atom along the
//ring, starting from 1, with the atoms above the mean plane as
//superscript (before the letter) and those below as subscript (after
//it). The tropics, where the envelopes and half-chairs live, are at
//atan(sqrt(2)), about 54.74 degrees, from each pole.

type cpVertex struct {
	theta float64 //degrees
	phi   float64 //degrees
	name  string
}

var conformers6 = []cpVertex{
	{0, 0, "1C4"},
	{180, 0, "4C1"},
	//equator: boats and twist-boats, alternating every 30 degrees
	{90, 0, "14B"},
	{90, 30, "1S5"},
	{90, 60, "B25"},
	{90, 90, "3S5"},
	{90, 120, "36B"},
	{90, 150, "3S1"},
	{90, 180, "B14"},
	{90, 210, "2S4"},
	{90, 240, "25B"},
	{90, 270, "2S6"},
	{90, 300, "B36"},
	{90, 330, "1S3"},
	//northern tropic: envelopes and half-chairs
	{54.7356103, 0, "1E"},
	{54.7356103, 30, "1H2"},
	{54.7356103, 60, "E2"},
	{54.7356103, 90, "3H2"},
	{54.7356103, 120, "3E"},
	{54.7356103, 150, "3H4"},
	{54.7356103, 180, "E4"},
	{54.7356103, 210, "5H4"},
	{54.7356103, 240, "5E"},
	{54.7356103, 270, "5H6"},
	{54.7356103, 300, "E6"},
	{54.7356103, 330, "1H6"},
	//southern tropic
	{125.2643897, 0, "4E"},
	{125.2643897, 30, "4H5"},
	{125.2643897, 60, "E5"},
	{125.2643897, 90, "6H5"},
	{125.2643897, 120, "6E"},
	{125.2643897, 150, "6H1"},
	{125.2643897, 180, "E1"},
	{125.2643897, 210, "2H1"},
	{125.2643897, 240, "2E"},
	{125.2643897, 270, "2H3"},
	{125.2643897, 300, "E3"},
	{125.2643897, 330, "4H3"},
}

//The canonical conformers of a 5-membered ring lie on a circle, one
//every 18 degrees of phi, alternating envelopes and twists.
var conformers5 = []string{
	"1E", "1T2", "E2", "3T2", "3E", "3T4", "E4", "5T4", "5E", "5T1",
	"E1", "2T1", "2E", "2T3", "E3", "4T3", "4E", "4T5", "E5", "1T5",
}

// Classify6 returns the name of the canonical conformer of a 6-membered
// ring closest, by arc distance on the Cremer-Pople sphere, to the given
// puckering angles theta and phi, both in degrees. Ties go to the first
// of the tied conformers in the canonical order, which starts at the
// poles.
func Classify6(theta, phi float64) string {
	t1 := theta * math.Pi / 180
	p1 := phi * math.Pi / 180
	best := conformers6[0].name
	bestcos := -2.0
	for _, v := range conformers6 {
		t2 := v.theta * math.Pi / 180
		p2 := v.phi * math.Pi / 180
		//cosine of the arc between the two points on the sphere
		c := math.Cos(t1)*math.Cos(t2) + math.Sin(t1)*math.Sin(t2)*math.Cos(p1-p2)
		if c > bestcos {
			bestcos = c
			best = v.name
		}
	}
	return best
}

// Classify5 returns the name of the canonical conformer of a 5-membered
// ring closest to the given pseudorotation phase phi, in degrees. The
// puckering of an odd ring has no polar component, so phi alone places
// it on the pseudorotation circle.
func Classify5(phi float64) string {
	phi = math.Mod(phi, 360)
	if phi < 0 {
		phi += 360
	}
	i := int(math.Round(phi/18)) % len(conformers5)
	return conformers5[i]
}
