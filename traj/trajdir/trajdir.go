/*
 * trajdir.go, part of goconformer.
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

//Package trajdir loads the geometries of a batch of trajectories laid
//out as numbered folders (TRAJ1, TRAJ2, ...) under a common root, each
//folder holding one multi-geometry XYZ file, as produced by
//surface-hopping and other ensemble dynamics runs. The folder number
//always becomes the trajectory number of the geometries read from it,
//whatever their comment lines say.
package trajdir

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	chem "github.com/rmera/goconformer"
	"github.com/rmera/goconformer/traj/xyz"
)

// Options contains the options for loading a trajectory batch, to be
// used with the functions of this package.
type Options struct {
	file   string
	prefix string
	dt     float64
}

// DefaultOptions returns an Options with the default values: geometry
// files called dyn.xyz, folders prefixed TRAJ, and 0.5 fs between
// geometries whose files carry no times.
func DefaultOptions() *Options {
	O := new(Options)
	O.file = "dyn.xyz"
	O.prefix = "TRAJ"
	O.dt = 0.5
	return O
}

// File sets or returns the name of the geometry file expected inside
// each trajectory folder.
func (O *Options) File(name ...string) string {
	ret := O.file
	if len(name) > 0 && name[0] != "" {
		O.file = name[0]
	}
	return ret
}

// Prefix sets or returns the prefix of the trajectory folder names. A
// folder is a trajectory folder when its name is the prefix followed by
// digits, and nothing else.
func (O *Options) Prefix(prefix ...string) string {
	ret := O.prefix
	if len(prefix) > 0 && prefix[0] != "" {
		O.prefix = prefix[0]
	}
	return ret
}

// Dt sets or returns the time between successive geometries, used for
// geometries whose files carry no time metadata.
func (O *Options) Dt(dt ...float64) float64 {
	ret := O.dt
	if len(dt) > 0 && dt[0] >= 0 {
		O.dt = dt[0]
	}
	return ret
}

// Dirs returns the trajectory folders under root and their numbers,
// sorted by number. Folders whose names are not exactly the prefix plus
// digits are ignored, as is anything that is not a folder.
func Dirs(root string, options ...*Options) ([]string, []int, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, Error{err.Error(), root, []string{"Dirs"}, true}
	}
	re := regexp.MustCompile("^" + regexp.QuoteMeta(o.prefix) + `(\d+)$`)
	type dir struct {
		path string
		id   int
	}
	dirs := make([]dir, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sm := re.FindStringSubmatch(e.Name())
		if sm == nil {
			continue
		}
		id, aerr := strconv.Atoi(sm[1])
		if aerr != nil {
			continue
		}
		dirs = append(dirs, dir{filepath.Join(root, e.Name()), id})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].id < dirs[j].id })
	paths := make([]string, len(dirs))
	ids := make([]int, len(dirs))
	for i, d := range dirs {
		paths[i] = d.path
		ids[i] = d.id
	}
	return paths, ids, nil
}

// Read loads every geometry of every trajectory folder under root into
// one geometry set, in folder-number order. The trajectory number of
// each geometry is the folder number. Times come from the files when
// they carry them; otherwise each geometry gets its index in its file
// times the dt option. Folders without a readable geometry file are
// skipped with a head-up. All the files must carry the same atoms.
func Read(root string, options ...*Options) (*chem.GeomSet, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	paths, ids, err := Dirs(root, o)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	if len(paths) == 0 {
		return nil, chem.NewEmptyInputError(0, "trajdir.Read")
	}
	var G *chem.GeomSet
	for k, d := range paths {
		name := filepath.Join(d, o.file)
		if _, serr := os.Stat(name); serr != nil {
			log.Printf("No %s in %s, skipping the folder", o.file, d)
			continue
		}
		sub, rerr := xyz.Read(name)
		if rerr != nil {
			if _, ok := rerr.(*chem.EmptyInputError); ok {
				log.Printf("No geometries in %s, skipping the folder", name)
				continue
			}
			return nil, errDecorate(rerr, "trajdir.Read")
		}
		for i := 0; i < sub.Len(); i++ {
			m := sub.Meta(i)
			m.Traj = ids[k]
			if _, ok := xyz.ParseTime(m.Label); !ok {
				m.Time = float64(i) * o.dt
			}
		}
		if G == nil {
			G = sub
			continue
		}
		if eerr := G.Extend(sub); eerr != nil {
			return nil, errDecorate(eerr, "trajdir.Read")
		}
	}
	if G == nil || G.Len() == 0 {
		return nil, chem.NewEmptyInputError(len(paths), "trajdir.Read")
	}
	return G, nil
}

//Errors

//errDecorate asserts that the error implements chem.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(chem.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for trajectory-folder errors. It
//fulfills chem.Error.
type Error struct {
	message  string
	filename string //the folder or file with problems
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("trajectory folder %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the folder or file to which the error was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
