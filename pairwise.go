/*
 * pairwise.go, part of mdforce.
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

//pairwise.go contains the scalar, one-pair-at-a-time versions of the pair
//terms, computed with plain component arithmetic. They are an independent
//code path from the batched functions in multi.go, which the test suite
//checks against them, and they are handy for drivers that only need one
//interaction at a time.

package mdforce

import (
	"math"

	v3 "github.com/Armin-Ariamajd/mdforce/v3"
)

//displacement returns the components of qi - qj and their Euclidean norm,
//taking only the first vector of each matrix.
func displacement(qi, qj *v3.Matrix) ([3]float64, float64) {
	var rel [3]float64
	var d2 float64
	for m := 0; m < 3; m++ {
		rel[m] = qi.At(0, m) - qj.At(0, m)
		d2 += rel[m] * rel[m]
	}
	return rel, math.Sqrt(d2)
}

//CoulombPair calculates the coulomb interaction between the two particles
//with coordinates qi and qj and charges ci and cj, with ke the Coulomb
//constant. It returns the force on each of the two particles and the
//potential energy of the pair.
func CoulombPair(qi, qj *v3.Matrix, ci, cj, ke float64) (*v3.Matrix, *v3.Matrix, float64) {
	rel, d := displacement(qi, qj)
	e := ke * ci * cj / d
	coef := e / (d * d)
	return pairForces(rel, coef, e)
}

//LennardJonesPair calculates the 12-6 Lennard-Jones interaction between
//the two particles with coordinates qi and qj, with A and B coefficients
//a and b. It returns the force on each of the two particles and the
//potential energy of the pair.
func LennardJonesPair(qi, qj *v3.Matrix, a, b float64) (*v3.Matrix, *v3.Matrix, float64) {
	rel, d := displacement(qi, qj)
	d2 := d * d
	d6 := d2 * d2 * d2
	d12 := d6 * d6
	e := a/d12 - b/d6
	coef := 12*a/(d12*d2) - 6*b/(d6*d2)
	fi, fj, _ := pairForces(rel, coef, e)
	return fi, fj, e
}

//BondVibrationHarmonicPair calculates the harmonic bond-vibration
//interaction kb*(d-d0)^2 between the two particles with coordinates qi
//and qj, with equilibrium bond length d0 and force constant kb. It
//returns the force on each of the two particles and the potential energy
//of the pair.
func BondVibrationHarmonicPair(qi, qj *v3.Matrix, d0, kb float64) (*v3.Matrix, *v3.Matrix, float64) {
	rel, d := displacement(qi, qj)
	delta := d - d0
	e := kb * delta * delta
	coef := -2 * kb * delta / d
	fi, fj, _ := pairForces(rel, coef, e)
	return fi, fj, e
}

//pairForces builds the antisymmetric force pair coef*rel and -coef*rel.
func pairForces(rel [3]float64, coef, e float64) (*v3.Matrix, *v3.Matrix, float64) {
	fi := v3.Zeros(1)
	fj := v3.Zeros(1)
	for m := 0; m < 3; m++ {
		f := coef * rel[m]
		fi.Set(0, m, f)
		fj.Set(0, m, -f)
	}
	return fi, fj, e
}
