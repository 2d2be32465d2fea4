/*
 * analyze.go, part of goconformer.
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

//Package analyze ties the library together behind one object: load a
//batch of geometries from either a tree of trajectory folders or one or
//more multi-geometry XYZ files, then cluster them or run the
//Cremer-Pople ring analysis on them, without dealing with the
//subpackages directly. An Analysis holds one geometry set at a time and
//is meant to be driven from a single goroutine; it does no locking of
//its own.
package analyze

import (
	"fmt"
	"strings"

	chem "github.com/rmera/goconformer"
	"github.com/rmera/goconformer/cluster"
	"github.com/rmera/goconformer/traj/trajdir"
	"github.com/rmera/goconformer/traj/xyz"
)

// Options contains the options for an Analysis, to be given to New.
type Options struct {
	puck chem.Puckerer
	dirs *trajdir.Options
}

// DefaultOptions returns an Options with the default values: the
// built-in Cremer-Pople engine and the default trajectory-folder
// conventions.
func DefaultOptions() *Options {
	O := new(Options)
	O.puck = chem.CPEngine{}
	O.dirs = trajdir.DefaultOptions()
	return O
}

// Puckerer sets or returns the engine used by the ring-pucker analysis.
// Any implementation of chem.Puckerer can be put here in place of the
// built-in one.
func (O *Options) Puckerer(puck ...chem.Puckerer) chem.Puckerer {
	ret := O.puck
	if len(puck) > 0 && puck[0] != nil {
		O.puck = puck[0]
	}
	return ret
}

// TrajDir sets or returns the options passed through to the
// trajectory-folder loader by LoadDirs.
func (O *Options) TrajDir(o ...*trajdir.Options) *trajdir.Options {
	ret := O.dirs
	if len(o) > 0 && o[0] != nil {
		O.dirs = o[0]
	}
	return ret
}

// Analysis is the one-stop object for conformational analysis. It
// starts empty; a successful call to one of the Load functions fills it
// with a geometry set, which every later Load fully replaces. The
// analysis functions fail with a *chem.NotLoadedError until then.
type Analysis struct {
	set    *chem.GeomSet
	source string
	o      *Options
}

// New returns an Analysis with nothing loaded.
func New(options ...*Options) *Analysis {
	A := new(Analysis)
	if len(options) > 0 && options[0] != nil {
		A.o = options[0]
	} else {
		A.o = DefaultOptions()
	}
	return A
}

// Loaded returns whether the Analysis holds a geometry set.
func (A *Analysis) Loaded() bool {
	return A.set != nil
}

// LoadDirs loads the geometries of the trajectory folders under root,
// in folder-number order, replacing any previously loaded set. A failed
// load leaves the previous set, if any, in place.
func (A *Analysis) LoadDirs(root string) error {
	G, err := trajdir.Read(root, A.o.dirs)
	if err != nil {
		return errDecorate(err, "LoadDirs")
	}
	A.set = G
	A.source = "trajectory folders under " + root
	return nil
}

// LoadXYZ loads the geometries of the given multi-geometry XYZ files,
// concatenated in the given order, replacing any previously loaded set.
// A failed load leaves the previous set, if any, in place.
func (A *Analysis) LoadXYZ(files ...string) error {
	G, err := xyz.Read(files...)
	if err != nil {
		return errDecorate(err, "LoadXYZ")
	}
	A.set = G
	A.source = "xyz file(s): " + strings.Join(files, ", ")
	return nil
}

// Set returns the loaded geometry set itself, not a copy, so the caller
// can go past the Analysis surface: read coordinates, overwrite
// metadata records in place, or feed the set to the subpackages
// directly. Nothing re-validates the set after such changes. It returns
// nil if nothing is loaded.
func (A *Analysis) Set() *chem.GeomSet {
	return A.set
}

// Source returns a description of where the loaded geometries came
// from, or an empty string if nothing is loaded.
func (A *Analysis) Source() string {
	return A.source
}

// Cluster groups the loaded geometries on their flattened coordinates,
// by the method of the given name: "kmeans", "hierarchical" (or
// "agglomerative") or "dbscan". The options, if given, are handed to the
// engine as they are, and the fitted model is returned as the engine
// produced it.
func (A *Analysis) Cluster(method string, options ...*cluster.Options) (*cluster.Model, error) {
	if A.set == nil {
		return nil, chem.NewNotLoadedError("Cluster")
	}
	eng, err := cluster.NewEngine(method, options...)
	if err != nil {
		return nil, errDecorate(err, "Cluster")
	}
	M, err := eng.FitModel(A.set.FeatureMatrix())
	if err != nil {
		return nil, errDecorate(err, "Cluster")
	}
	return M, nil
}

// CremerPople runs the ring-pucker analysis of the given ring, a slice
// of distinct zero-based atom indexes in ring-traversal order, over
// every loaded geometry. The ring is validated before any geometry is
// processed; geometries for which the engine fails are skipped and
// accounted for in the report rather than failing the batch.
func (A *Analysis) CremerPople(ring []int) (chem.PuckerList, *chem.PuckerReport, error) {
	if A.set == nil {
		return nil, nil, chem.NewNotLoadedError("CremerPople")
	}
	list, rep, err := chem.RingPuckers(A.set, ring, A.o.puck)
	if err != nil {
		return nil, nil, errDecorate(err, "CremerPople")
	}
	return list, rep, nil
}

// Summary returns a human-readable description of the loaded set: where
// it came from, how many geometries and atoms, and the ranges of the
// metadata. It works, and says so, when nothing is loaded. A
// diagnostic; the format is not stable.
func (A *Analysis) Summary() string {
	var b strings.Builder
	fmt.Fprintln(&b, "==================================================")
	fmt.Fprintln(&b, "Analysis Summary")
	fmt.Fprintln(&b, "==================================================")
	if A.set == nil {
		fmt.Fprintln(&b, "No geometries loaded")
		return b.String()
	}
	fmt.Fprintf(&b, "Source: %s\n", A.source)
	fmt.Fprintf(&b, "Geometries: %d\n", A.set.Len())
	fmt.Fprintf(&b, "Atoms per geometry: %d\n", A.set.NAtoms())
	fmt.Fprintf(&b, "Elements: %s\n", strings.Join(A.set.Elements(), " "))
	fmt.Fprintf(&b, "Trajectories: %v\n", A.set.TrajIDs())
	tmin, tmax := A.set.TimeRange()
	fmt.Fprintf(&b, "Times: %g to %g fs\n", tmin, tmax)
	return b.String()
}

//errDecorate asserts that the error implements chem.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(chem.Error)
	err2.Decorate(caller)
	return err2
}
