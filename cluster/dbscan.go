/*
 * dbscan.go, part of goconformer.
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

	"gonum.org/v1/gonum/mat"
)

//not yet in any cluster
const unvisited = -2

// DBSCAN groups the observations of data (one per row) by density: an
// observation with at least MinSamples neighbors within Eps (itself
// included) is a core point, core points within Eps of each other share
// a cluster, and the rest of their neighborhoods joins them.
// Observations reachable from no core point get the Noise label. The
// number of clusters comes out of the data, not the options.
func DBSCAN(data *mat.Dense, options ...*Options) (*Model, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	r, _, err := checkData(data, "DBSCAN")
	if err != nil {
		return nil, err
	}
	if o.eps <= 0 || o.minsamples < 1 {
		return nil, Error{fmt.Sprintf("bad density parameters: eps %v, %d minimum samples", o.eps, o.minsamples), []string{"DBSCAN"}}
	}
	neighbors := func(i int) []int {
		var ret []int
		for j := 0; j < r; j++ {
			if dist(data.RawRowView(i), data.RawRowView(j)) <= o.eps {
				ret = append(ret, j)
			}
		}
		return ret
	}
	labels := make([]int, r)
	for i := range labels {
		labels[i] = unvisited
	}
	k := 0
	for i := 0; i < r; i++ {
		if labels[i] != unvisited {
			continue
		}
		N := neighbors(i)
		if len(N) < o.minsamples {
			labels[i] = Noise
			continue
		}
		labels[i] = k
		//N grows as the cluster expands through its core points
		for qi := 0; qi < len(N); qi++ {
			p := N[qi]
			if labels[p] == Noise {
				labels[p] = k //a border point after all
			}
			if labels[p] != unvisited {
				continue
			}
			labels[p] = k
			Np := neighbors(p)
			if len(Np) >= o.minsamples {
				N = append(N, Np...)
			}
		}
		k++
	}
	return &Model{method: "dbscan", labels: labels, k: k}, nil
}
