/*
 * terms.go, part of mdforce.
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

//terms.go contains the "lazy" kernels: the closed-form force/energy
//formulas of each pair term, evaluated over displacement vectors and
//distances that the caller has already computed. The kth vector of the
//returned matrix is the force ON the reference particle FROM the kth
//partner, directed along the displacement vector; the kth element of the
//returned slice is the potential energy of that pair. The energy and
//force expressions of each term must use consistent conventions, as the
//force is the negative gradient of the energy: the harmonic terms carry
//no 1/2 prefactor, so their force carries the factor 2.

package mdforce

import (
	v3 "github.com/Armin-Ariamajd/mdforce/v3"
)

//coulomb evaluates e = ke*qq/d and f = e/d^2 * rel for each pair, where
//qq is the product of the charges of the pair. The potential is reused in
//the force expression to save a multiplication.
func coulomb(rel *v3.Matrix, dist []float64, qq []float64, ke float64) (*v3.Matrix, []float64) {
	n := len(dist)
	f := v3.Zeros(n)
	e := make([]float64, n)
	for k := 0; k < n; k++ {
		e[k] = ke * qq[k] / dist[k]
		fk := f.VecView(k)
		fk.Scale(e[k]/(dist[k]*dist[k]), rel.VecView(k))
	}
	return f, e
}

//lennardJones evaluates the 12-6 form e = a/d^12 - b/d^6 and its negative
//gradient f = (12a/d^14 - 6b/d^8) * rel for each pair.
func lennardJones(rel *v3.Matrix, dist, aijs, bijs []float64) (*v3.Matrix, []float64) {
	n := len(dist)
	f := v3.Zeros(n)
	e := make([]float64, n)
	for k := 0; k < n; k++ {
		d2 := dist[k] * dist[k]
		d6 := d2 * d2 * d2
		d12 := d6 * d6
		e[k] = aijs[k]/d12 - bijs[k]/d6
		coef := 12*aijs[k]/(d12*d2) - 6*bijs[k]/(d6*d2)
		fk := f.VecView(k)
		fk.Scale(coef, rel.VecView(k))
	}
	return f, e
}

//bondHarmonic evaluates e = kb*(d-d0)^2 and the restoring force
//f = -2*kb*(d-d0)/d * rel for each pair. The force vanishes smoothly at
//d = d0; the only singularity is at d = 0, where the direction is
//undefined.
func bondHarmonic(rel *v3.Matrix, dist, d0ijs, kbijs []float64) (*v3.Matrix, []float64) {
	n := len(dist)
	f := v3.Zeros(n)
	e := make([]float64, n)
	for k := 0; k < n; k++ {
		delta := dist[k] - d0ijs[k]
		e[k] = kbijs[k] * delta * delta
		fk := f.VecView(k)
		fk.Scale(-2*kbijs[k]*delta/dist[k], rel.VecView(k))
	}
	return f, e
}
