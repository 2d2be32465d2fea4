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

//goclassify runs the Cremer-Pople analysis on every geometry of a
//multi-geometry XYZ file, taking the ring to be the first six atoms,
//prints the conformation statistics and writes the classified table
//next to the input.
//
//Usage:
//
//	goclassify some.xyz
//
//writes some.classified.dat. The program fails if the file can not be
//read at all; geometries that fail individually are skipped, reported,
//and do not abort the rest.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	chem "github.com/rmera/goconformer"
	"github.com/rmera/goconformer/analyze"
	"github.com/rmera/scu"
)

//the fixed ring of this diagnostic: the first 6 atoms of the geometry
var ring = []int{0, 1, 2, 3, 4, 5}

//tableName returns the name of the table written for the given input,
//with the extension (and any compression suffix) replaced by
//.classified.dat.
func tableName(input string) string {
	base := input
	for _, suf := range []string{".gz", ".zst", ".zstd"} {
		base = strings.TrimSuffix(base, suf)
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".classified.dat"
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: goclassify file.xyz")
		os.Exit(1)
	}
	input := os.Args[1]
	sep := strings.Repeat("=", 70)
	fmt.Println(sep)
	fmt.Println("Analyzing and classifying", input)
	fmt.Println(sep)
	A := analyze.New()
	err := A.LoadXYZ(input)
	scu.QErr(err)
	fmt.Println("Loaded", A.Set().Len(), "geometries")
	list, rep, err := A.CremerPople(ring)
	scu.QErr(err)
	if rep.Succeeded == 0 {
		scu.QErr(fmt.Errorf("none of the %d geometries could be analyzed", rep.Attempted))
	}
	if len(rep.Skipped) > 0 {
		warn := strings.Repeat("!", 70)
		fmt.Println(warn)
		fmt.Printf("WARNING: %d of %d geometries failed and were skipped: %v\n", len(rep.Skipped), rep.Attempted, rep.Skipped)
		fmt.Println(warn)
	}
	fmt.Printf("\nTotal: %d, succeeded: %d\n", rep.Attempted, rep.Succeeded)
	m, s := chem.MeanStd(list.Qs())
	fmt.Printf("q: %.6f +/- %.6f A\n", m, s)
	m, s = chem.MeanStd(list.Thetas())
	fmt.Printf("theta: %.2f +/- %.2f deg\n", m*180/math.Pi, s*180/math.Pi)
	m, s = chem.MeanStd(list.Phis())
	fmt.Printf("phi: %.2f +/- %.2f deg\n", m, s)
	fmt.Println("\nConformations:")
	counts := list.Counts()
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, v := range names {
		fmt.Printf("  %-10s: %5d (%5.2f%%)\n", v, counts[v], 100*float64(counts[v])/float64(rep.Succeeded))
	}
	out := tableName(input)
	err = list.WriteTableFile(out, input, ring, rep)
	scu.QErr(err)
	fmt.Println("\nSaved table to", out)
}
