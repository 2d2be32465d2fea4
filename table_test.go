/*
 * table_test.go, part of goconformer.
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
	"strings"
	"testing"
)

func sampleList() PuckerList {
	return PuckerList{
		{GeomIndex: 0, Q: 0.55123456, Theta: 1.57079633, Phi: 60.00000001, Conf: "B25"},
		{GeomIndex: 1, Q: 0.56000000, Theta: 0.01234567, Phi: 0, Conf: "1C4"},
		{GeomIndex: 3, Q: 0.54400000, Theta: 1.60000000, Phi: 61.5, Conf: "B25"},
	}
}

func TestTableRoundTrip(Te *testing.T) {
	list := sampleList()
	rep := &PuckerReport{Attempted: 4, Succeeded: 3, Skipped: []int{2}}
	name := "test/sample.classified.dat"
	err := list.WriteTableFile(name, "sample.xyz", []int{0, 1, 2, 3, 4, 5}, rep)
	if err != nil {
		Te.Fatal(err)
	}
	back, err := ReadTableFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(back) != len(list) {
		Te.Fatalf("want %d rows back, got %d", len(list), len(back))
	}
	for i, v := range back {
		w := list[i]
		if v.GeomIndex != w.GeomIndex || v.Conf != w.Conf {
			Te.Errorf("row %d: want %+v, got %+v", i, w, v)
		}
		//the table carries 8 decimals
		if math.Abs(v.Q-w.Q) > 1e-8 || math.Abs(v.Theta-w.Theta) > 1e-8 || math.Abs(v.Phi-w.Phi) > 1e-8 {
			Te.Errorf("row %d: want %+v, got %+v", i, w, v)
		}
	}
}

func TestTableFormat(Te *testing.T) {
	var b strings.Builder
	list := sampleList()
	err := list.WriteTable(&b, "some.xyz", []int{0, 1, 2, 3, 4, 5}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	fmt.Println(out)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "# Source: some.xyz") {
		Te.Errorf("wrong source line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "[0, 1, 2, 3, 4, 5]") {
		Te.Errorf("wrong ring line: %q", lines[2])
	}
	//the first data row, fixed-width
	want := "             0     0.55123456     1.57079633    60.00000001           B25"
	if lines[5] != want {
		Te.Errorf("want row %q,\ngot      %q", want, lines[5])
	}
	if !strings.Contains(out, "# Total geometries: 3") {
		Te.Error("missing or wrong summary")
	}
	//B25 appears twice, so it leads the histogram
	if !strings.Contains(out, "#   B25       :     2 (66.67%)") {
		Te.Error("wrong conformation histogram")
	}
}

func TestCountsAndStats(Te *testing.T) {
	list := sampleList()
	counts := list.Counts()
	if counts["B25"] != 2 || counts["1C4"] != 1 {
		Te.Errorf("wrong counts: %v", counts)
	}
	mean, std := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5) > 1e-12 {
		Te.Errorf("want mean 5, got %f", mean)
	}
	if math.Abs(std-math.Sqrt(32.0/7.0)) > 1e-12 {
		Te.Errorf("want sample std %f, got %f", math.Sqrt(32.0/7.0), std)
	}
	qs := list.Qs()
	if len(qs) != 3 || qs[2] != 0.544 {
		Te.Errorf("wrong qs: %v", qs)
	}
}

func TestWriteCSV(Te *testing.T) {
	var b strings.Builder
	if err := sampleList().WriteCSV(&b); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 4 {
		Te.Fatalf("want 4 csv lines, got %d", len(lines))
	}
	if lines[0] != "geometry_idx,q,theta,phi,conformation" {
		Te.Errorf("wrong csv header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1,0.56,") {
		Te.Errorf("wrong csv row: %q", lines[2])
	}
}
