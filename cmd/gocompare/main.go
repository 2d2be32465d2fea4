/*
 * main.go, part of goconformer.
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

//gocompare checks that the two loading routes agree: it reads the same
//trajectory batch from a tree of trajectory folders and from a single
//multi-geometry XYZ file, runs the Cremer-Pople analysis of the first
//six atoms on both, and reports the statistics of each route and the
//largest relative deviation per parameter, against a 1e-9 tolerance.
//
//Usage:
//
//	gocompare trajdir-root file.xyz
//
//The exit status is non-zero when the routes disagree.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	chem "github.com/rmera/goconformer"
	"github.com/rmera/goconformer/analyze"
	"github.com/rmera/scu"
)

var ring = []int{0, 1, 2, 3, 4, 5}

const rtol = 1e-9

func report(label string, list chem.PuckerList) {
	fmt.Printf("\n%s:\n", label)
	fmt.Printf("  Geometries: %d\n", len(list))
	m, s := chem.MeanStd(list.Qs())
	fmt.Printf("  q (mean +/- std): %.6f +/- %.6f\n", m, s)
	m, s = chem.MeanStd(list.Thetas())
	fmt.Printf("  theta (mean +/- std): %.6f +/- %.6f\n", m, s)
	m, s = chem.MeanStd(list.Phis())
	fmt.Printf("  phi (mean +/- std): %.6f +/- %.6f\n", m, s)
}

//maxRelDev returns the largest relative deviation between the paired
//values of a and b. Pairs of exact zeros deviate by zero.
func maxRelDev(a, b []float64) float64 {
	ret := 0.0
	for i, v := range a {
		w := b[i]
		denom := math.Max(math.Abs(v), math.Abs(w))
		if denom == 0 {
			continue
		}
		ret = math.Max(ret, math.Abs(v-w)/denom)
	}
	return ret
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: gocompare trajdir-root file.xyz")
		os.Exit(1)
	}
	root, file := os.Args[1], os.Args[2]
	sep := strings.Repeat("=", 70)
	fmt.Println("Loading from trajectory folders under", root)
	A := analyze.New()
	scu.QErr(A.LoadDirs(root))
	lista, repa, err := A.CremerPople(ring)
	scu.QErr(err)
	fmt.Println("Loading from", file)
	B := analyze.New()
	scu.QErr(B.LoadXYZ(file))
	listb, repb, err := B.CremerPople(ring)
	scu.QErr(err)
	fmt.Println("\n" + sep)
	fmt.Println("RESULTS")
	fmt.Println(sep)
	report("Trajectory folders", lista)
	report("XYZ file", listb)
	fmt.Println("\n" + sep)
	fmt.Println("VERIFICATION")
	fmt.Println(sep)
	if len(lista) != len(listb) || repa.Attempted != repb.Attempted {
		fmt.Printf("The routes analyzed different batches: %d vs %d geometries\n", repa.Attempted, repb.Attempted)
		os.Exit(1)
	}
	devq := maxRelDev(lista.Qs(), listb.Qs())
	devtheta := maxRelDev(lista.Thetas(), listb.Thetas())
	devphi := maxRelDev(lista.Phis(), listb.Phis())
	fmt.Printf("Max relative deviation, q: %.2e, theta: %.2e, phi: %.2e (tolerance %.0e)\n", devq, devtheta, devphi, rtol)
	if devq > rtol || devtheta > rtol || devphi > rtol {
		fmt.Println("Results identical: NO")
		os.Exit(1)
	}
	fmt.Println("Results identical: YES")
	fmt.Println("Both routes produce the same ring puckering parameters")
}
