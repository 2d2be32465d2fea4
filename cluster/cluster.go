/*
 * cluster.go, part of goconformer.
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

//Package cluster groups geometries by similarity. It offers k-means,
//agglomerative (hierarchical) and DBSCAN engines, all working on a
//gonum matrix with one row per observation, such as the feature matrix
//of a geometry set. Fitted models expose the per-observation labels and
//whatever else each method produces.
package cluster

import (
	"fmt"
	"strings"

	chem "github.com/rmera/goconformer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//Noise is the label DBSCAN gives to observations that belong to no
//cluster.
const Noise = -1

// Options contains the options for the clustering engines, to be given
// to the functions of this package.
type Options struct {
	clusters   int
	maxiter    int
	minsamples int
	eps        float64
	tol        float64
	seed       int64
	linkage    string
}

// DefaultOptions returns an Options with the default values: 2
// clusters, average linkage, an epsilon of 0.5 and 5 minimum samples,
// 300 iterations at most with a 1e-4 tolerance, and a fixed seed.
func DefaultOptions() *Options {
	O := new(Options)
	O.clusters = 2
	O.maxiter = 300
	O.minsamples = 5
	O.eps = 0.5
	O.tol = 1e-4
	O.seed = 1
	O.linkage = "average"
	return O
}

// Clusters sets or returns the number of clusters sought by k-means and
// the hierarchical engine.
func (O *Options) Clusters(k ...int) int {
	ret := O.clusters
	if len(k) > 0 && k[0] > 0 {
		O.clusters = k[0]
	}
	return ret
}

// MaxIter sets or returns the k-means iteration cap.
func (O *Options) MaxIter(n ...int) int {
	ret := O.maxiter
	if len(n) > 0 && n[0] > 0 {
		O.maxiter = n[0]
	}
	return ret
}

// MinSamples sets or returns the DBSCAN density threshold: the
// neighbors, the observation itself included, an observation needs
// within Eps to be a core point.
func (O *Options) MinSamples(n ...int) int {
	ret := O.minsamples
	if len(n) > 0 && n[0] > 0 {
		O.minsamples = n[0]
	}
	return ret
}

// Eps sets or returns the DBSCAN neighborhood radius.
func (O *Options) Eps(eps ...float64) float64 {
	ret := O.eps
	if len(eps) > 0 && eps[0] > 0 {
		O.eps = eps[0]
	}
	return ret
}

// Tol sets or returns the k-means convergence tolerance, the largest
// center displacement under which the iterations stop.
func (O *Options) Tol(tol ...float64) float64 {
	ret := O.tol
	if len(tol) > 0 && tol[0] > 0 {
		O.tol = tol[0]
	}
	return ret
}

// Seed sets or returns the seed of the k-means random seeding.
func (O *Options) Seed(seed ...int64) int64 {
	ret := O.seed
	if len(seed) > 0 {
		O.seed = seed[0]
	}
	return ret
}

// Linkage sets or returns the hierarchical linkage: "single", "complete"
// or "average".
func (O *Options) Linkage(linkage ...string) string {
	ret := O.linkage
	if len(linkage) > 0 && linkage[0] != "" {
		O.linkage = linkage[0]
	}
	return ret
}

// Model is the result of fitting any of the engines of this package.
type Model struct {
	method  string
	labels  []int
	centers *mat.Dense
	inertia float64
	k       int
}

// Method returns the name of the engine that produced the model.
func (M *Model) Method() string {
	return M.method
}

// Labels returns the cluster assigned to each observation, in
// observation order. DBSCAN labels noise observations with Noise.
func (M *Model) Labels() []int {
	return M.labels
}

// NClusters returns the number of clusters in the model, noise not
// counted.
func (M *Model) NClusters() int {
	return M.k
}

// Centers returns the cluster centers, one row per cluster, or nil for
// the engines that do not produce centers.
func (M *Model) Centers() *mat.Dense {
	return M.centers
}

// Inertia returns the summed squared distances of the observations to
// their assigned centers. It is zero for the engines without centers.
func (M *Model) Inertia() float64 {
	return M.inertia
}

// NNoise returns the number of observations labeled as noise.
func (M *Model) NNoise() int {
	n := 0
	for _, v := range M.labels {
		if v == Noise {
			n++
		}
	}
	return n
}

// Sizes returns the number of observations in each cluster, the Noise
// key collecting the noise observations, if any.
func (M *Model) Sizes() map[int]int {
	ret := make(map[int]int)
	for _, v := range M.labels {
		ret[v]++
	}
	return ret
}

func (M *Model) String() string {
	return fmt.Sprintf("%s model: %d observations in %d clusters", M.method, len(M.labels), M.k)
}

// Engine dispatches to one of the clustering engines by name, putting
// them all behind the root package's Clusterer interface. The names are
// "kmeans", "hierarchical" (or "agglomerative") and "dbscan", matched
// without regard for case.
type Engine struct {
	method string
	o      *Options
}

// NewEngine returns an engine for the given method name, with the given
// options.
func NewEngine(method string, options ...*Options) (*Engine, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	E := &Engine{o: o}
	switch strings.ToLower(method) {
	case "kmeans", "k-means":
		E.method = "kmeans"
	case "hierarchical", "agglomerative":
		E.method = "hierarchical"
	case "dbscan":
		E.method = "dbscan"
	default:
		return nil, Error{fmt.Sprintf("unknown clustering method %q", method), []string{"NewEngine"}}
	}
	return E, nil
}

// FitModel fits the engine's method to the given data, one row per
// observation.
func (E *Engine) FitModel(data *mat.Dense) (*Model, error) {
	switch E.method {
	case "kmeans":
		return KMeans(data, E.o)
	case "hierarchical":
		return Hierarchical(data, E.o)
	case "dbscan":
		return DBSCAN(data, E.o)
	}
	return nil, Error{fmt.Sprintf("unknown clustering method %q", E.method), []string{"FitModel"}}
}

// Fit is FitModel behind the root package's Clusterer interface.
func (E *Engine) Fit(data *mat.Dense) (chem.ClusterModel, error) {
	M, err := E.FitModel(data)
	if err != nil {
		return nil, err
	}
	return M, nil
}

// Stats returns the size of each cluster and the mean, over each
// cluster, of the given per-observation values. Noise observations form
// their own entry under the Noise key.
func Stats(values []float64, labels []int) (map[int]int, map[int]float64, error) {
	if len(values) != len(labels) {
		return nil, nil, Error{fmt.Sprintf("%d values given for %d labels", len(values), len(labels)), []string{"Stats"}}
	}
	groups := make(map[int][]float64)
	for i, lab := range labels {
		groups[lab] = append(groups[lab], values[i])
	}
	sizes := make(map[int]int, len(groups))
	means := make(map[int]float64, len(groups))
	for lab, vals := range groups {
		sizes[lab] = len(vals)
		means[lab] = stat.Mean(vals, nil)
	}
	return sizes, means, nil
}

//dist returns the Euclidean distance between two observations.
func dist(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

//sqDist returns the squared Euclidean distance between two observations.
func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

//checkData returns the dimensions of the data, or an error for data
//unusable by any engine.
func checkData(data *mat.Dense, caller string) (int, int, error) {
	if data == nil {
		return 0, 0, Error{"nil data", []string{caller}}
	}
	r, c := data.Dims()
	if r < 1 || c < 1 {
		return 0, 0, Error{fmt.Sprintf("data has dimensions %dx%d", r, c), []string{caller}}
	}
	return r, c, nil
}

//Errors

//Error is the general structure for clustering errors. It fulfills
//chem.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("cluster: %s", err.message)
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
