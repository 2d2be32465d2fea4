/*
 * hier.go, part of goconformer.
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

package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Hierarchical groups the observations of data (one per row)
// agglomeratively: every observation starts as its own cluster and the
// two closest clusters merge, repeatedly, until the number of clusters
// of the options remains. The distance between merged clusters follows
// the linkage option: "single" (closest members), "complete" (farthest
// members) or "average" (mean over member pairs).
func Hierarchical(data *mat.Dense, options ...*Options) (*Model, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	r, _, err := checkData(data, "Hierarchical")
	if err != nil {
		return nil, err
	}
	k := o.clusters
	if k < 1 || k > r {
		return nil, Error{fmt.Sprintf("%d clusters wanted from %d observations", k, r), []string{"Hierarchical"}}
	}
	switch o.linkage {
	case "single", "complete", "average":
	default:
		return nil, Error{fmt.Sprintf("unknown linkage %q", o.linkage), []string{"Hierarchical"}}
	}
	//pairwise distances between active clusters; merges keep the lower
	//index alive.
	d := make([][]float64, r)
	for i := range d {
		d[i] = make([]float64, r)
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			v := dist(data.RawRowView(i), data.RawRowView(j))
			d[i][j] = v
			d[j][i] = v
		}
	}
	active := make([]bool, r)
	size := make([]int, r)
	members := make([][]int, r)
	for i := range active {
		active[i] = true
		size[i] = 1
		members[i] = []int{i}
	}
	for nactive := r; nactive > k; nactive-- {
		a, b := closestPair(d, active)
		for x := 0; x < r; x++ {
			if !active[x] || x == a || x == b {
				continue
			}
			var v float64
			switch o.linkage {
			case "single":
				v = math.Min(d[a][x], d[b][x])
			case "complete":
				v = math.Max(d[a][x], d[b][x])
			case "average":
				v = (float64(size[a])*d[a][x] + float64(size[b])*d[b][x]) / float64(size[a]+size[b])
			}
			d[a][x] = v
			d[x][a] = v
		}
		size[a] += size[b]
		members[a] = append(members[a], members[b]...)
		active[b] = false
	}
	labels := make([]int, r)
	lab := 0
	for i := 0; i < r; i++ {
		if !active[i] {
			continue
		}
		for _, m := range members[i] {
			labels[m] = lab
		}
		lab++
	}
	return &Model{method: "hierarchical", labels: labels, k: k}, nil
}

//closestPair returns the two active clusters at the smallest distance,
//lower index first.
func closestPair(d [][]float64, active []bool) (int, int) {
	besti, bestj := -1, -1
	best := math.Inf(1)
	for i := 0; i < len(d); i++ {
		if !active[i] {
			continue
		}
		for j := i + 1; j < len(d); j++ {
			if !active[j] {
				continue
			}
			if d[i][j] < best {
				best = d[i][j]
				besti, bestj = i, j
			}
		}
	}
	return besti, bestj
}
