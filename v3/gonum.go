/*
 * gonum.go, part of goconformer
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

//gonum.go holds the Matrix type and everything needed for handling the
//gonum types and facilities behind it. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point
//in 3D space. The names of some functions in the library reflect this.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is the main container, a set of row vectors in 3D space.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix returns a Matrix backed by the gonum Dense matrix A.
// It panics if A does not have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(PanicMsg(fmt.Sprintf("goconformer/v3: Dense2Matrix: matrix has %d columns, need 3", c)))
	}
	return &Matrix{A}
}

// NewMatrix creates and returns a Matrix with the given data, which must
// have a length divisible by 3, as the matrix will have 3 columns.
func NewMatrix(data []float64) (*Matrix, error) {
	if len(data) < 3 || len(data)%3 != 0 {
		return nil, Error{fmt.Sprintf("invalid data length for a 3-column matrix: %d", len(data)), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(len(data)/3, 3, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NVecs returns the number of vectors in the receiver.
func (F *Matrix) NVecs() int {
	r, _ := F.Dense.Dims()
	return r
}

// VecView returns a view of the ith vector of the receiver. Changes to
// the view are reflected in the receiver.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// View returns a view of the receiver covering r rows starting from the
// ith, and the full 3 columns.
func (F *Matrix) View(i, r int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)}
}

// SomeVecs copies to the receiver the vectors of A with the indexes given
// in clist. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(PanicMsg(fmt.Sprintf("goconformer/v3: SomeVecs: receiver has %d vectors, %d indexes given", F.NVecs(), len(clist))))
	}
	for k, v := range clist {
		F.Dense.SetRow(k, A.Dense.RawRowView(v))
	}
}

// SetVecs copies the vectors of A to the vectors of the receiver with the
// indexes given in clist. A must have len(clist) vectors.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() != len(clist) {
		panic(PanicMsg(fmt.Sprintf("goconformer/v3: SetVecs: %d vectors given for %d indexes", A.NVecs(), len(clist))))
	}
	for k, v := range clist {
		F.Dense.SetRow(v, A.Dense.RawRowView(k))
	}
}

// Sub subtracts B from A, placing the result in the receiver. All three
// must have the same number of vectors.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

// Add adds A and B, placing the result in the receiver.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

// Scale scales A by v, placing the result in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

// AddVec adds the vector vec to every vector of A, placing the result in
// the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(PanicMsg("goconformer/v3: AddVec: vec must have exactly one vector"))
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.Dense.At(i, j)+vec.Dense.At(0, j))
		}
	}
}

// SubVec subtracts the vector vec from every vector of A, placing the
// result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(PanicMsg("goconformer/v3: SubVec: vec must have exactly one vector"))
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.Dense.At(i, j)-vec.Dense.At(0, j))
		}
	}
}

// Cross puts the cross product of the 1x3 vectors a and b in the receiver,
// which must also be 1x3.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(PanicMsg("goconformer/v3: Cross: arguments and receiver must have exactly one vector each"))
	}
	ax, ay, az := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	bx, by, bz := b.At(0, 0), b.At(0, 1), b.At(0, 2)
	F.Set(0, 0, ay*bz-az*by)
	F.Set(0, 1, az*bx-ax*bz)
	F.Set(0, 2, ax*by-ay*bx)
}

// Dot returns the dot product of the receiver and B, both of which must be
// 1x3 vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(PanicMsg("goconformer/v3: Dot: both vectors must have exactly one vector"))
	}
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

// Norm returns the i-norm of the receiver. i=2 gives the Frobenius norm,
// which for a 1x3 vector is the Euclidean norm.
func (F *Matrix) Norm(i int) float64 {
	return mat.Norm(F.Dense, float64(i))
}

// Unit puts in the receiver the unit vector in the direction of the 1x3
// vector A. It returns an error if the norm of A is zero.
func (F *Matrix) Unit(A *Matrix) error {
	n := A.Norm(2)
	if n == 0 {
		return Error{"cannot normalize a zero vector", []string{"Unit"}, true}
	}
	F.Scale(1.0/n, A)
	return nil
}

// Centroid puts the geometric center of the vectors of A in the receiver,
// which must be a 1x3 vector.
func (F *Matrix) Centroid(A *Matrix) {
	if F.NVecs() != 1 {
		panic(PanicMsg("goconformer/v3: Centroid: receiver must have exactly one vector"))
	}
	n := float64(A.NVecs())
	for j := 0; j < 3; j++ {
		sum := 0.0
		for i := 0; i < A.NVecs(); i++ {
			sum += A.At(i, j)
		}
		F.Set(0, j, sum/n)
	}
}

// String returns a neat text representation of the receiver.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense, mat.Squeeze()))
}

// Error implements the error interface for the v3 package, with a
// decoration trail for the calling functions.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

// Decorate adds the dec string to the decoration trail of the error and
// returns the updated trail.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is the type used for the text of panics raised by this package
// on programming errors, so they can be recovered and distinguished.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
