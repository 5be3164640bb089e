/*
 * gonum.go, part of mdforce.
 *
 * Copyright 2021 Armin Ariamajd
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
 */

//gonum.go contains the Matrix type itself and everything tied to the
//underlying gonum/mat implementation, plus the error machinery of the
//package.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation,
//a gonum Dense matrix with 3 columns, is embedded, so the full gonum API
//is available. Within the package it is understood that a "vector" is a
//row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a 3-column gonum Dense matrix into a Matrix.
//It panics if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//VecView returns a view of the ith vector of the matrix in the receiver.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
//Notice that very little memory allocation happens, only a couple of
//ints and pointers.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Len returns the number of vectors in F.
func (F *Matrix) Len() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//NVecs is a legacy alias for Len.
func (F *Matrix) NVecs() int {
	return F.Len()
}

//Mul wraps mat.Mul to take care of the case when one of the
//arguments is also the receiver. Since the receiver is a Matrix,
//the gonum function would only check A (mat.Dense) vs F (Matrix) and
//it would not know that internally F.Dense==A, hence the need for this
//function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

//Scale multiplies every element of A by i, putting the result in the
//receiver. As with Mul, the promoted gonum method would take the receiver
//as a plain mat.Matrix argument and reject F==A as an overlapping region,
//even though scaling in place is safe, so both sides are unwrapped here.
func (F *Matrix) Scale(i float64, A *Matrix) {
	F.Dense.Scale(i, A.Dense)
}

//Add puts the element-wise sum of A and B in the receiver. See Scale for
//why the promoted gonum method cannot be used when the receiver is also
//one of the arguments.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts the element-wise difference A-B in the receiver. See Scale.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Norm returns the norm of the receiver. For a Matrix of a single vector,
//norm 2 is the Euclidean norm. The meaning of the argument is as in
//mat.Norm, except that 2 is always taken to mean the Frobenius norm,
//which for a vector coincides with the Euclidean one.
func (F *Matrix) Norm(i float64) float64 {
	if i == 2 {
		return mat.Norm(F.Dense, 2) //Frobenius in gonum
	}
	return mat.Norm(F.Dense, i)
}

//Dot returns the dot product of the first vectors of F and B.
//It panics if either matrix has no vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.Len() < 1 || B.Len() < 1 {
		panic(ErrNotEnoughElements)
	}
	var d float64
	for i := 0; i < 3; i++ {
		d += F.At(0, i) * B.At(0, i)
	}
	return d
}

//Errors

//Error is the error type of the package, to be used for errors that can be
//handled by the caller. For programming mistakes (say, shape violations)
//the package panics with a PanicMsg instead, as gonum does.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("mdforce/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("mdforce/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("mdforce/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("mdforce/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("mdforce/v3: index out of range")
)
