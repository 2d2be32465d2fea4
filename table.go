/*
 * table.go, part of goconformer.
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
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Pucker is the result of the Cremer-Pople analysis of one geometry.
// Q is the total puckering amplitude, in the distance unit of the
// coordinates analyzed. Theta is in radians and Phi in degrees, the
// units the analysis returns them in, which are also the units of the
// persisted tables.
type Pucker struct {
	GeomIndex int
	Q         float64
	Theta     float64
	Phi       float64
	Conf      string
}

// PuckerReport accounts for the geometries attempted in a batch
// analysis. Skipped contains the indexes of the geometries for which
// the analysis failed, which have no row in the corresponding
// PuckerList.
type PuckerReport struct {
	Attempted int
	Succeeded int
	Skipped   []int
}

// A PuckerList contains the puckering results of a batch of geometries,
// one entry per geometry successfully analyzed, in geometry order.
type PuckerList []*Pucker

// Qs returns the puckering amplitudes of the list.
func (P PuckerList) Qs() []float64 {
	ret := make([]float64, len(P))
	for i, v := range P {
		ret[i] = v.Q
	}
	return ret
}

// Thetas returns the polar puckering angles of the list, in radians.
func (P PuckerList) Thetas() []float64 {
	ret := make([]float64, len(P))
	for i, v := range P {
		ret[i] = v.Theta
	}
	return ret
}

// Phis returns the azimuthal puckering angles of the list, in degrees.
func (P PuckerList) Phis() []float64 {
	ret := make([]float64, len(P))
	for i, v := range P {
		ret[i] = v.Phi
	}
	return ret
}

// Confs returns the conformation codes of the list.
func (P PuckerList) Confs() []string {
	ret := make([]string, len(P))
	for i, v := range P {
		ret[i] = v.Conf
	}
	return ret
}

// GeomIndexes returns the index, in the geometry set analyzed, of each
// entry of the list.
func (P PuckerList) GeomIndexes() []int {
	ret := make([]int, len(P))
	for i, v := range P {
		ret[i] = v.GeomIndex
	}
	return ret
}

// Counts returns a histogram of the conformation codes in the list.
func (P PuckerList) Counts() map[string]int {
	ret := make(map[string]int)
	for _, v := range P {
		ret[v.Conf]++
	}
	return ret
}

// MeanStd returns the mean and the sample standard deviation of data.
func MeanStd(data []float64) (float64, float64) {
	return stat.MeanStdDev(data, nil)
}

//formats a ring specification the way the tables carry it, with
//brackets and comma-separated zero-based indexes.
func ringString(ring []int) string {
	s := make([]string, len(ring))
	for i, v := range ring {
		s[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// WriteTable writes the list to w in the fixed-width classified-table
// format: comment-prefixed header lines naming the source of the
// geometries and the ring analyzed, one row per geometry with columns
// geometry_idx, q, theta (radians), phi (degrees) and conformation, and
// a commented summary with the conformation counts. rep, when not nil,
// supplies the attempted-geometry count for the summary; otherwise every
// geometry is taken as succeeded. The column layout is stable, as
// downstream tooling reads these files by column position.
func (P PuckerList) WriteTable(w io.Writer, source string, ring []int, rep *PuckerReport) error {
	total := len(P)
	if rep != nil {
		total = rep.Attempted
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Cremer-Pople Parameters with Classification\n")
	fmt.Fprintf(bw, "# Source: %s\n", source)
	fmt.Fprintf(bw, "# Ring atoms: %s\n", ringString(ring))
	fmt.Fprintf(bw, "#\n")
	fmt.Fprintf(bw, "  geometry_idx              q          theta            phi  conformation\n")
	for _, v := range P {
		fmt.Fprintf(bw, "%14d  %13.8f  %13.8f  %13.8f  %12s\n", v.GeomIndex, v.Q, v.Theta, v.Phi, v.Conf)
	}
	fmt.Fprintf(bw, "\n# Summary Statistics\n")
	fmt.Fprintf(bw, "# Total geometries: %d\n", total)
	fmt.Fprintf(bw, "# Successfully classified: %d\n", len(P))
	fmt.Fprintf(bw, "#\n")
	fmt.Fprintf(bw, "# Conformation Counts and Percentages:\n")
	counts := P.Counts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	//by decreasing count, ties broken alphabetically, so the output
	//is deterministic
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		count := counts[name]
		fmt.Fprintf(bw, "#   %-10s: %5d (%5.2f%%)\n", name, count, 100*float64(count)/float64(len(P)))
	}
	if err := bw.Flush(); err != nil {
		werr := new(CError)
		werr.msg = err.Error()
		werr.Decorate("WriteTable")
		return werr
	}
	return nil
}

// WriteTableFile writes the list, as WriteTable does, to a file with the
// given name, creating or truncating it.
func (P PuckerList) WriteTableFile(name, source string, ring []int, rep *PuckerReport) error {
	f, err := os.Create(name)
	if err != nil {
		werr := new(CError)
		werr.msg = err.Error()
		werr.Decorate("WriteTableFile")
		return werr
	}
	defer f.Close()
	err = P.WriteTable(f, source, ring, rep)
	if err != nil {
		return errDecorate(err, "WriteTableFile")
	}
	return nil
}

// ReadTableFile reads back a table in the format written by WriteTable.
// Comment lines, blank lines and the column-header line are skipped.
// Tables without the conformation column, as written by tools that
// classify nothing, are also accepted; their entries get an empty Conf.
func ReadTableFile(name string) (PuckerList, error) {
	f, err := os.Open(name)
	if err != nil {
		rerr := new(CError)
		rerr.msg = err.Error()
		rerr.Decorate("ReadTableFile")
		return nil, rerr
	}
	defer f.Close()
	ret := make(PuckerList, 0, 100)
	scanner := bufio.NewScanner(f)
	nline := 0
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "geometry_idx" {
			continue
		}
		if len(fields) < 4 {
			rerr := new(CError)
			rerr.msg = fmt.Sprintf("%s, line %d: %d columns found, at least 4 needed", name, nline, len(fields))
			rerr.Decorate("ReadTableFile")
			return nil, rerr
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			rerr := new(CError)
			rerr.msg = fmt.Sprintf("%s, line %d: %s", name, nline, err.Error())
			rerr.Decorate("ReadTableFile")
			return nil, rerr
		}
		nums := make([]float64, 3)
		for i := 0; i < 3; i++ {
			nums[i], err = strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				rerr := new(CError)
				rerr.msg = fmt.Sprintf("%s, line %d: %s", name, nline, err.Error())
				rerr.Decorate("ReadTableFile")
				return nil, rerr
			}
		}
		p := &Pucker{GeomIndex: idx, Q: nums[0], Theta: nums[1], Phi: nums[2]}
		if len(fields) >= 5 {
			p.Conf = fields[4]
		}
		ret = append(ret, p)
	}
	if err := scanner.Err(); err != nil {
		rerr := new(CError)
		rerr.msg = err.Error()
		rerr.Decorate("ReadTableFile")
		return nil, rerr
	}
	return ret, nil
}

// WriteCSV writes the list to w as comma-separated values with a header
// row, for consumption by data-analysis tooling.
func (P PuckerList) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"geometry_idx", "q", "theta", "phi", "conformation"}); err != nil {
		werr := new(CError)
		werr.msg = err.Error()
		werr.Decorate("WriteCSV")
		return werr
	}
	for _, v := range P {
		rec := []string{
			strconv.Itoa(v.GeomIndex),
			strconv.FormatFloat(v.Q, 'f', -1, 64),
			strconv.FormatFloat(v.Theta, 'f', -1, 64),
			strconv.FormatFloat(v.Phi, 'f', -1, 64),
			v.Conf,
		}
		if err := cw.Write(rec); err != nil {
			werr := new(CError)
			werr.msg = err.Error()
			werr.Decorate("WriteCSV")
			return werr
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		werr := new(CError)
		werr.msg = err.Error()
		werr.Decorate("WriteCSV")
		return werr
	}
	return nil
}
