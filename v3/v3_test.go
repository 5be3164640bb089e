/*
 * v3_test.go, part of mdforce.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.Len() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.Len())
	}
	//a slice not divisible by 3 is not valid input
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice of length 4")
	}
}

func TestVecView(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	View := A.VecView(1)
	if View.At(0, 0) != 4 || View.At(0, 2) != 6 {
		Te.Errorf("Wrong view: %v", View)
	}
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in the view are not reflected in the viewed matrix")
	}
}

func TestAddSubVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Error(err)
	}
	row, err := NewMatrix([]float64{10, 20, 30})
	if err != nil {
		Te.Error(err)
	}
	A.AddVec(A, row)
	if A.At(0, 0) != 11 || A.At(1, 2) != 36 {
		Te.Errorf("Wrong addition: %v", A)
	}
	A.SubVec(A, row)
	if A.At(0, 0) != 1 || A.At(1, 2) != 6 {
		Te.Errorf("Wrong subtraction: %v", A)
	}
	//the subtracted vector must be restored to its original value
	if row.At(0, 1) != 20 {
		Te.Errorf("SubVec clobbered its argument: %v", row)
	}
}

//TestInPlace checks the operations whose receiver is also one of the
//arguments, which the embedded gonum methods reject as aliased regions.
func TestInPlace(Te *testing.T) {
	v, _ := NewMatrix([]float64{1, -2, 3})
	v.Scale(-1, v)
	if v.At(0, 0) != -1 || v.At(0, 1) != 2 || v.At(0, 2) != -3 {
		Te.Errorf("Wrong in-place scaling: %v", v)
	}
	w, _ := NewMatrix([]float64{1, 1, 1})
	v.Add(v, w)
	if v.At(0, 0) != 0 || v.At(0, 1) != 3 || v.At(0, 2) != -2 {
		Te.Errorf("Wrong in-place addition: %v", v)
	}
	v.Sub(v, w)
	if v.At(0, 0) != -1 || v.At(0, 1) != 2 || v.At(0, 2) != -3 {
		Te.Errorf("Wrong in-place subtraction: %v", v)
	}
	v.Unit(v)
	if math.Abs(v.Norm(2)-1) > 1e-12 {
		Te.Errorf("Wrong in-place unit vector: %v", v)
	}
}

func TestNormDot(Te *testing.T) {
	v, err := NewMatrix([]float64{3, 4, 0})
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(v.Norm(2)-5) > 1e-12 {
		Te.Errorf("Wrong norm: %f", v.Norm(2))
	}
	w, _ := NewMatrix([]float64{1, 1, 2})
	if math.Abs(v.Dot(w)-7) > 1e-12 {
		Te.Errorf("Wrong dot product: %f", v.Dot(w))
	}
}

func TestCross(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v", z)
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	B.SomeVecs(A, cind)
	for k, v := range cind {
		for j := 0; j < 3; j++ {
			if B.At(k, j) != A.At(v, j) {
				Te.Errorf("Wrong vector %d copied: %v vs %v", k, B, A)
			}
		}
	}
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 {
		Te.Error("SetVecs did not set the vector back")
	}
}

func TestUnit(Te *testing.T) {
	v, _ := NewMatrix([]float64{2, 0, 0})
	u := Zeros(1)
	u.Unit(v)
	if math.Abs(u.Norm(2)-1) > 1e-12 || u.At(0, 0) != 1 {
		Te.Errorf("Wrong unit vector: %v", u)
	}
}
