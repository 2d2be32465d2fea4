/*
 * trajdir_test.go, part of goconformer.
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

package trajdir

import (
	"fmt"
	"math"
	"testing"

	chem "github.com/rmera/goconformer"
)

var rootdirtest string = "../../test/dyn"

func TestDirs(Te *testing.T) {
	fmt.Println("Trajectory folder discovery test!")
	paths, ids, err := Dirs(rootdirtest)
	if err != nil {
		Te.Fatal(err)
	}
	//TRAJ4 is a regular file and run7 has another prefix, so neither
	//counts. Order is numeric, not lexicographic.
	want := []int{1, 2, 3, 10}
	if len(ids) != len(want) {
		Te.Fatal("expected 4 trajectory folders, got", ids)
	}
	for i, v := range want {
		if ids[i] != v {
			Te.Error("wrong folder order:", ids)
			break
		}
	}
	fmt.Println("found", paths)
	o := DefaultOptions()
	o.Prefix("run")
	_, ids, err = Dirs(rootdirtest, o)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != 7 {
		Te.Error("expected only the run7 folder, got", ids)
	}
	if _, _, err = Dirs(rootdirtest + "/nothere"); err == nil {
		Te.Error("a missing root should fail")
	}
}

func TestTrajDirRead(Te *testing.T) {
	fmt.Println("Trajectory folder read test!")
	G, err := Read(rootdirtest)
	if err != nil {
		Te.Fatal(err)
	}
	//TRAJ1 and TRAJ2 have 2 geometries each, TRAJ10 has 1 and TRAJ3 has
	//no geometry file at all.
	if G.Len() != 5 {
		Te.Fatal("expected 5 geometries, got", G.Len())
	}
	if G.NAtoms() != 3 || G.Elements()[0] != "O" {
		Te.Error("wrong atoms:", G.NAtoms(), G.Elements())
	}
	trajs := G.TrajIDs()
	if len(trajs) != 3 || trajs[0] != 1 || trajs[1] != 2 || trajs[2] != 10 {
		Te.Error("wrong trajectory numbers:", trajs)
	}
	//the folder number wins over whatever the comment lines say
	if G.Meta(0).Traj != 1 || G.Meta(1).Traj != 1 {
		Te.Error("the folder number should override the file metadata:", G.Meta(0), G.Meta(1))
	}
	//times from the file when given, index*dt when not
	wanttimes := []float64{10, 20, 0, 0.5, 0}
	wanttrajs := []int{1, 1, 2, 2, 10}
	for i := 0; i < G.Len(); i++ {
		m := G.Meta(i)
		if m.Time != wanttimes[i] || m.Traj != wanttrajs[i] {
			Te.Errorf("geometry %d: expected traj %d time %v, got %v", i, wanttrajs[i], wanttimes[i], m)
		}
	}
	if math.Abs(G.Coords(4).At(0, 0)-0.2) > 1e-12 {
		Te.Error("folder order not kept:", G.Coords(4).At(0, 0))
	}
	fmt.Println("read", G)
}

func TestTrajDirOptions(Te *testing.T) {
	fmt.Println("Trajectory folder options test!")
	o := DefaultOptions()
	if old := o.Dt(2.0); old != 0.5 {
		Te.Error("Dt should return the previous value, got", old)
	}
	G, err := Read(rootdirtest, o)
	if err != nil {
		Te.Fatal(err)
	}
	//only the TRAJ2 times depend on dt
	if G.Meta(2).Time != 0 || G.Meta(3).Time != 2.0 {
		Te.Error("the dt option should set the fallback times:", G.Meta(2), G.Meta(3))
	}
	o = DefaultOptions()
	o.File("geom.xyz")
	G, err = Read(rootdirtest, o)
	if err != nil {
		Te.Fatal(err)
	}
	//only TRAJ1 has a geom.xyz
	if G.Len() != 1 || G.Meta(0).Traj != 1 || G.Meta(0).Label != "a lone geometry" {
		Te.Error("expected the one geometry of TRAJ1/geom.xyz, got", G.Len(), G.Meta(0))
	}
	o = DefaultOptions()
	o.Prefix("run")
	G, err = Read(rootdirtest, o)
	if err != nil {
		Te.Fatal(err)
	}
	if G.Len() != 1 || G.Meta(0).Traj != 7 {
		Te.Error("expected the one geometry of run7, got", G.Len(), G.Meta(0))
	}
}

func TestTrajDirEmpty(Te *testing.T) {
	//a root with no trajectory folders at all
	o := DefaultOptions()
	o.Prefix("missing")
	_, err := Read(rootdirtest, o)
	if _, ok := err.(*chem.EmptyInputError); !ok {
		Te.Error("expected a *chem.EmptyInputError, got:", err)
	}
}
