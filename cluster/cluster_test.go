/*
 * cluster_test.go, part of goconformer.
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
	"testing"

	chem "github.com/rmera/goconformer"
	"gonum.org/v1/gonum/mat"
)

//blobs returns observations in well-separated groups, ten per group,
//plus the index ranges of the groups.
func blobs(offsets ...float64) (*mat.Dense, [][]int) {
	per := 10
	data := mat.NewDense(per*len(offsets), 2, nil)
	groups := make([][]int, len(offsets))
	for g, off := range offsets {
		for i := 0; i < per; i++ {
			row := g*per + i
			data.Set(row, 0, off+0.1*float64(i%5))
			data.Set(row, 1, off-0.1*float64(i%3))
			groups[g] = append(groups[g], row)
		}
	}
	return data, groups
}

//sameGroups checks that the labels split the observations exactly into
//the given groups, whatever the label values.
func sameGroups(labels []int, groups [][]int) bool {
	seen := make(map[int]bool)
	for _, group := range groups {
		lab := labels[group[0]]
		if seen[lab] {
			return false
		}
		seen[lab] = true
		for _, i := range group {
			if labels[i] != lab {
				return false
			}
		}
	}
	return true
}

func TestKMeans(Te *testing.T) {
	fmt.Println("KMeans test!")
	data, groups := blobs(0, 1000, 2000)
	o := DefaultOptions()
	o.Clusters(3)
	M, err := KMeans(data, o)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(M, "inertia:", M.Inertia())
	if M.NClusters() != 3 {
		Te.Error("expected 3 clusters, got", M.NClusters())
	}
	if !sameGroups(M.Labels(), groups) {
		Te.Error("the blobs were not recovered:", M.Labels())
	}
	if M.Centers() == nil {
		Te.Error("k-means should produce centers")
	}
	//well-separated blobs leave only the tiny within-blob spread
	if M.Inertia() > 10 {
		Te.Error("inertia too large for this data:", M.Inertia())
	}
	sizes := M.Sizes()
	for lab, n := range sizes {
		if n != 10 {
			Te.Error("wrong size for cluster", lab, ":", n)
		}
	}
	//same seed, same fit
	M2, err := KMeans(data, o)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range M.Labels() {
		if M2.Labels()[i] != v {
			Te.Error("the fit should be deterministic for a given seed")
			break
		}
	}
	if _, err := KMeans(data, nil); err != nil {
		Te.Error("nil options should mean the defaults:", err)
	}
}

func TestKMeansErrors(Te *testing.T) {
	data, _ := blobs(0)
	o := DefaultOptions()
	o.Clusters(11)
	if _, err := KMeans(data, o); err == nil {
		Te.Error("more clusters than observations should fail")
	}
	if _, err := KMeans(data, &Options{}); err == nil {
		Te.Error("a zero-value Options has no cluster count and should fail")
	}
	if _, err := KMeans(nil, DefaultOptions()); err == nil {
		Te.Error("nil data should fail")
	}
}

func TestHierarchical(Te *testing.T) {
	fmt.Println("Hierarchical test!")
	data, groups := blobs(0, 1000, 2000)
	for _, linkage := range []string{"single", "complete", "average"} {
		o := DefaultOptions()
		o.Clusters(3)
		o.Linkage(linkage)
		M, err := Hierarchical(data, o)
		if err != nil {
			Te.Fatal(linkage, err)
		}
		if M.NClusters() != 3 || !sameGroups(M.Labels(), groups) {
			Te.Error(linkage, "linkage did not recover the blobs:", M.Labels())
		}
		fmt.Println(linkage, "fine:", M)
	}
	//one cluster per observation and one cluster for everything
	o := DefaultOptions()
	o.Clusters(30)
	M, err := Hierarchical(data, o)
	if err != nil {
		Te.Fatal(err)
	}
	if M.NClusters() != 30 {
		Te.Error("expected a cluster per observation, got", M.NClusters())
	}
	o.Clusters(1)
	if M, err = Hierarchical(data, o); err != nil || M.Labels()[0] != M.Labels()[29] {
		Te.Error("expected a single cluster:", M, err)
	}
	o.Linkage("ward")
	if _, err := Hierarchical(data, o); err == nil {
		Te.Error("an unknown linkage should fail")
	}
}

func TestDBSCAN(Te *testing.T) {
	fmt.Println("DBSCAN test!")
	data, groups := blobs(0, 1000)
	//an isolated observation, reachable from nothing
	rows := data.RawMatrix().Rows
	all := mat.NewDense(rows+1, 2, nil)
	all.Slice(0, rows, 0, 2).(*mat.Dense).Copy(data)
	all.Set(rows, 0, 5000)
	all.Set(rows, 1, 5000)
	o := DefaultOptions()
	o.Eps(2.0)
	o.MinSamples(3)
	M, err := DBSCAN(all, o)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(M, "noise:", M.NNoise())
	if M.NClusters() != 2 {
		Te.Error("expected 2 clusters, got", M.NClusters())
	}
	if !sameGroups(M.Labels(), groups) {
		Te.Error("the blobs were not recovered:", M.Labels())
	}
	if M.Labels()[rows] != Noise || M.NNoise() != 1 {
		Te.Error("the isolated observation should be noise:", M.Labels()[rows], M.NNoise())
	}
	if M.Centers() != nil {
		Te.Error("DBSCAN has no centers")
	}
	o = DefaultOptions()
	o.MinSamples(50) //more than the whole data
	M, err = DBSCAN(all, o)
	if err != nil {
		Te.Fatal(err)
	}
	if M.NClusters() != 0 || M.NNoise() != rows+1 {
		Te.Error("everything should be noise:", M)
	}
}

func TestEngine(Te *testing.T) {
	fmt.Println("Engine dispatch test!")
	data, groups := blobs(0, 1000)
	o := DefaultOptions()
	o.Clusters(2)
	for _, method := range []string{"kmeans", "KMeans", "hierarchical", "agglomerative", "dbscan"} {
		E, err := NewEngine(method, o)
		if err != nil {
			Te.Fatal(method, err)
		}
		var clusterer chem.Clusterer = E
		M, err := clusterer.Fit(data)
		if err != nil {
			Te.Fatal(method, err)
		}
		if method != "dbscan" && M.NClusters() != 2 {
			Te.Error(method, "expected 2 clusters, got", M.NClusters())
		}
		if !sameGroups(M.Labels(), groups) {
			Te.Error(method, "did not recover the blobs:", M.Labels())
		}
	}
	if _, err := NewEngine("spectral"); err == nil {
		Te.Error("an unknown method should fail")
	}
	var _ chem.ClusterModel = new(Model)
}

func TestStats(Te *testing.T) {
	values := []float64{1, 2, 3, 10, 20, 7}
	labels := []int{0, 0, 0, 1, 1, Noise}
	sizes, means, err := Stats(values, labels)
	if err != nil {
		Te.Fatal(err)
	}
	if sizes[0] != 3 || sizes[1] != 2 || sizes[Noise] != 1 {
		Te.Error("wrong sizes:", sizes)
	}
	if means[0] != 2 || means[1] != 15 || means[Noise] != 7 {
		Te.Error("wrong means:", means)
	}
	if _, _, err := Stats(values, labels[:3]); err == nil {
		Te.Error("mismatched lengths should fail")
	}
}
