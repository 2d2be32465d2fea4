/*
 * kmeans.go, part of goconformer.
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
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// KMeans partitions the observations of data (one per row) into the
// number of clusters of the options, by Lloyd iterations from a
// k-means++ seeding. The iterations stop when no center moves more than
// the tolerance, or at the iteration cap. The fit is deterministic for
// a given seed.
func KMeans(data *mat.Dense, options ...*Options) (*Model, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	r, c, err := checkData(data, "KMeans")
	if err != nil {
		return nil, err
	}
	k := o.clusters
	if k < 1 || k > r {
		return nil, Error{fmt.Sprintf("%d clusters wanted from %d observations", k, r), []string{"KMeans"}}
	}
	rng := rand.New(rand.NewSource(o.seed))
	centers := seedPlusPlus(data, k, rng)
	labels := make([]int, r)
	scratch := mat.NewDense(k, c, nil)
	counts := make([]int, k)
	for iter := 0; iter < o.maxiter; iter++ {
		for i := 0; i < r; i++ {
			labels[i] = nearest(centers, data.RawRowView(i))
		}
		scratch.Zero()
		for i := range counts {
			counts[i] = 0
		}
		for i := 0; i < r; i++ {
			row := data.RawRowView(i)
			for j := 0; j < c; j++ {
				scratch.Set(labels[i], j, scratch.At(labels[i], j)+row[j])
			}
			counts[labels[i]]++
		}
		for i := 0; i < k; i++ {
			if counts[i] == 0 {
				//reseat an emptied cluster on the worst-fitted observation
				w := worstFitted(data, centers, labels)
				scratch.SetRow(i, data.RawRowView(w))
				counts[i] = 1
				labels[w] = i
			} else {
				for j := 0; j < c; j++ {
					scratch.Set(i, j, scratch.At(i, j)/float64(counts[i]))
				}
			}
		}
		shift := 0.0
		for i := 0; i < k; i++ {
			if d := dist(centers.RawRowView(i), scratch.RawRowView(i)); d > shift {
				shift = d
			}
		}
		centers.Copy(scratch)
		if shift <= o.tol {
			break
		}
	}
	inertia := 0.0
	for i := 0; i < r; i++ {
		labels[i] = nearest(centers, data.RawRowView(i))
		inertia += sqDist(data.RawRowView(i), centers.RawRowView(labels[i]))
	}
	return &Model{method: "kmeans", labels: labels, centers: centers, inertia: inertia, k: k}, nil
}

//seedPlusPlus picks k starting centers: the first at random, each later
//one with probability proportional to its squared distance to the
//centers already picked.
func seedPlusPlus(data *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	r, c := data.Dims()
	centers := mat.NewDense(k, c, nil)
	centers.SetRow(0, data.RawRowView(rng.Intn(r)))
	d2 := make([]float64, r)
	for picked := 1; picked < k; picked++ {
		total := 0.0
		for i := 0; i < r; i++ {
			best := math.Inf(1)
			for j := 0; j < picked; j++ {
				if d := sqDist(data.RawRowView(i), centers.RawRowView(j)); d < best {
					best = d
				}
			}
			d2[i] = best
			total += best
		}
		next := 0
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i := 0; i < r; i++ {
				acc += d2[i]
				if acc >= target {
					next = i
					break
				}
			}
		} else {
			//all the remaining observations sit on a picked center
			next = rng.Intn(r)
		}
		centers.SetRow(picked, data.RawRowView(next))
	}
	return centers
}

//nearest returns the row of centers closest to the observation, ties
//going to the lowest row.
func nearest(centers *mat.Dense, obs []float64) int {
	k, _ := centers.Dims()
	best := 0
	bestd := math.Inf(1)
	for i := 0; i < k; i++ {
		if d := sqDist(obs, centers.RawRowView(i)); d < bestd {
			bestd = d
			best = i
		}
	}
	return best
}

//worstFitted returns the observation farthest from its assigned center.
func worstFitted(data *mat.Dense, centers *mat.Dense, labels []int) int {
	r, _ := data.Dims()
	worst := 0
	worstd := -1.0
	for i := 0; i < r; i++ {
		if d := sqDist(data.RawRowView(i), centers.RawRowView(labels[i])); d > worstd {
			worstd = d
			worst = i
		}
	}
	return worst
}
