/*
 * distances.go, part of mdforce.
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

package mdforce

import (
	v3 "github.com/Armin-Ariamajd/mdforce/v3"
)

//Displacements calculates the displacement vector from each particle in
//qjs to the single particle in qi, and the corresponding Euclidean
//distances. The kth vector of the returned matrix is qi - qjs[k], and the
//kth element of the returned slice is its norm. A zero distance
//(coincident particles) is not special-cased here; it is the caller's
//responsibility, or that of the formulas downstream.
//Panics if qi holds more than one vector.
func Displacements(qi, qjs *v3.Matrix) (*v3.Matrix, []float64) {
	if qi.Len() != 1 {
		panic(v3.ErrShape)
	}
	n := qjs.Len()
	rel := v3.Zeros(n)
	dist := make([]float64, n)
	for k := 0; k < n; k++ {
		r := rel.VecView(k)
		r.Sub(qi, qjs.VecView(k))
		dist[k] = r.Norm(2)
	}
	return rel, dist
}
