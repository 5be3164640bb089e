/*
 * multi.go, part of mdforce.
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

//multi.go contains the batched, one-reference-against-many-particles
//dispatch layer over the kernels in terms.go.

package mdforce

import (
	"fmt"

	v3 "github.com/Armin-Ariamajd/mdforce/v3"
	"gonum.org/v1/gonum/floats"
)

//Coulomb calculates the coulomb potential between a number of
//particle-pairs, the total force on a single reference particle i due to
//a number of other particles js, and the force on each particle in js due
//to i. qi holds the coordinates of i (a single vector), qjs those of the
//js (one vector per particle), ci is the charge of i, cjs the charges of
//the js (index-matched to qjs) and ke the Coulomb constant, i.e. 1/4πε0
//in whatever units the caller works in.
//It returns the total force on i, the force on each particle in js (the
//kth vector is the force on the particle of the kth vector of qjs), and
//the potential energy of each pair. If some particle in js sits exactly
//on i, the corresponding force and energy come out infinite or NaN;
//passing true as the optional last argument makes the function return a
//*DegenerateGeometryError instead.
func Coulomb(qi, qjs *v3.Matrix, ci float64, cjs []float64, ke float64, strict ...bool) (*v3.Matrix, *v3.Matrix, []float64, error) {
	n := qjs.Len()
	if qi.Len() != 1 {
		return nil, nil, nil, &ShapeError{term: "coulomb", message: "the reference particle must be a single vector"}
	}
	if len(cjs) != n {
		return nil, nil, nil, &ShapeError{term: "coulomb", message: fmt.Sprintf("got %d charges for %d particles", len(cjs), n)}
	}
	rel, dist := Displacements(qi, qjs)
	if len(strict) > 0 && strict[0] {
		if err := checkCoincident(dist, "coulomb"); err != nil {
			return nil, nil, nil, errDecorate(err, "Coulomb")
		}
	}
	qq := make([]float64, n)
	for k, c := range cjs {
		qq[k] = ci * c
	}
	fijs, e := coulomb(rel, dist, qq, ke)
	fi := sumVecs(fijs)
	fijs.Scale(-1, fijs) //Newton's third law
	return fi, fijs, e, nil
}

//LennardJones calculates the 12-6 Lennard-Jones potential between a
//number of particle-pairs, the total force on a single reference particle
//i due to a number of other particles js, and the force on each particle
//in js due to i. aijs and bijs are the A and B coefficients of the
//potential between i and each particle in js, index-matched to qjs.
//Outputs and the optional strict mode are as in Coulomb.
func LennardJones(qi, qjs *v3.Matrix, aijs, bijs []float64, strict ...bool) (*v3.Matrix, *v3.Matrix, []float64, error) {
	n := qjs.Len()
	if qi.Len() != 1 {
		return nil, nil, nil, &ShapeError{term: "lennard-jones", message: "the reference particle must be a single vector"}
	}
	if len(aijs) != n || len(bijs) != n {
		return nil, nil, nil, &ShapeError{term: "lennard-jones", message: fmt.Sprintf("got %d A and %d B parameters for %d particles", len(aijs), len(bijs), n)}
	}
	rel, dist := Displacements(qi, qjs)
	if len(strict) > 0 && strict[0] {
		if err := checkCoincident(dist, "lennard-jones"); err != nil {
			return nil, nil, nil, errDecorate(err, "LennardJones")
		}
	}
	fijs, e := lennardJones(rel, dist, aijs, bijs)
	fi := sumVecs(fijs)
	fijs.Scale(-1, fijs)
	return fi, fijs, e, nil
}

//BondVibrationHarmonic calculates the harmonic bond-vibration potential
//kb*(d-d0)^2 between a number of particle-pairs, the total force on a
//single reference particle i due to a number of other particles js, and
//the force on each particle in js due to i. d0ijs holds the equilibrium
//bond length and kbijs the force constant of the bond between i and each
//particle in js, index-matched to qjs.
//Outputs and the optional strict mode are as in Coulomb. There is no
//singularity at d = d0 (the force goes to zero smoothly); only coincident
//particles are degenerate.
func BondVibrationHarmonic(qi, qjs *v3.Matrix, d0ijs, kbijs []float64, strict ...bool) (*v3.Matrix, *v3.Matrix, []float64, error) {
	n := qjs.Len()
	if qi.Len() != 1 {
		return nil, nil, nil, &ShapeError{term: "bond-vibration", message: "the reference particle must be a single vector"}
	}
	if len(d0ijs) != n || len(kbijs) != n {
		return nil, nil, nil, &ShapeError{term: "bond-vibration", message: fmt.Sprintf("got %d equilibrium lengths and %d force constants for %d particles", len(d0ijs), len(kbijs), n)}
	}
	rel, dist := Displacements(qi, qjs)
	if len(strict) > 0 && strict[0] {
		if err := checkCoincident(dist, "bond-vibration"); err != nil {
			return nil, nil, nil, errDecorate(err, "BondVibrationHarmonic")
		}
	}
	fijs, e := bondHarmonic(rel, dist, d0ijs, kbijs)
	fi := sumVecs(fijs)
	fijs.Scale(-1, fijs)
	return fi, fijs, e, nil
}

//sumVecs returns the elementwise sum of all the vectors of f as a
//single-vector matrix.
func sumVecs(f *v3.Matrix) *v3.Matrix {
	total := v3.Zeros(1)
	t := total.RawRowView(0)
	for k := 0; k < f.Len(); k++ {
		floats.Add(t, f.RawRowView(k))
	}
	return total
}

//checkCoincident returns a *DegenerateGeometryError naming every pair
//with a zero distance, or nil if there is none.
func checkCoincident(dist []float64, term string) error {
	var bad []int
	for k, d := range dist {
		if d == 0 {
			bad = append(bad, k)
		}
	}
	if bad != nil {
		return &DegenerateGeometryError{term: term, Pairs: bad}
	}
	return nil
}
