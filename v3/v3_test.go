/*
 * v3_test.go, part of goconformer
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestMatrixBasics(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("wrong number of vectors: %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("changes to a view are not reflected in the viewed matrix")
	}
	fmt.Println("View\n", A, "\n", View)
	_, err = NewMatrix([]float64{1, 2})
	if err == nil {
		Te.Error("NewMatrix accepted data not divisible by 3")
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	B.SomeVecs(A, cind)
	for k, v := range cind {
		for j := 0; j < 3; j++ {
			if B.At(k, j) != A.At(v, j) {
				Te.Errorf("SomeVecs mismatch at %d,%d", k, j)
			}
		}
	}
	B.Set(1, 1, 55)
	B.Set(2, 2, 66)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 || A.At(5, 2) != 66 {
		Te.Error("SetVecs did not write the modified vectors back")
	}
	fmt.Println(A, "\n", B)
}

func TestVecOps(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Error("x cross y is not z:", z)
	}
	if x.Dot(y) != 0 {
		Te.Error("x dot y is not 0")
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if v.Norm(2) != 5 {
		Te.Error("wrong norm for (3,4,0):", v.Norm(2))
	}
	u := Zeros(1)
	if err := u.Unit(v); err != nil {
		Te.Error(err)
	}
	if math.Abs(u.Norm(2)-1) > 1e-12 {
		Te.Error("Unit did not produce a unit vector")
	}
	zero := Zeros(1)
	if err := u.Unit(zero); err == nil {
		Te.Error("Unit accepted a zero vector")
	}
}

func TestCentroidAndShifts(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 2, 0, 0, 0, 2, 0, 2, 2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	c := Zeros(1)
	c.Centroid(A)
	if c.At(0, 0) != 1 || c.At(0, 1) != 1 || c.At(0, 2) != 0 {
		Te.Error("wrong centroid:", c)
	}
	B := Zeros(4)
	B.SubVec(A, c)
	c2 := Zeros(1)
	c2.Centroid(B)
	if c2.Norm(2) > 1e-12 {
		Te.Error("centered set does not have a zero centroid:", c2)
	}
	B.AddVec(B, c)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			if B.At(i, j) != A.At(i, j) {
				Te.Error("SubVec then AddVec did not restore the original")
			}
		}
	}
}
