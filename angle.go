/*
 * angle.go, part of mdforce.
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
	"math"

	v3 "github.com/Armin-Ariamajd/mdforce/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors in the angle argument before acos. Everything equal or less than
//this is considered zero.

//AngleVibrationHarmonic calculates the harmonic angle-vibration potential
//ka*(θ-θ0)^2 for a number of particle-triplets (i, j, k) sharing the
//central particle j, with θ the angle between the bonds j-i and j-k. qj
//holds the coordinates of j (a single vector); qis and qks those of the
//end particles of each triplet, index-matched, as are the equilibrium
//angles theta0 (radians) and force constants ka.
//It returns the total force on j due to all triplets, the force on each
//particle in qis, the force on each particle in qks, and the potential
//energy of each triplet. Per triplet the three forces sum to zero, so the
//term conserves momentum; the force on j is minus the sum of the forces
//on the two end particles. Swapping an i with its k swaps the two end
//forces and changes nothing else.
//A triplet with a zero bond length or with collinear particles (sinθ = 0)
//has no defined force direction and comes out infinite or NaN; passing
//true as the optional last argument makes the function return a
//*DegenerateGeometryError instead.
func AngleVibrationHarmonic(qj, qis, qks *v3.Matrix, theta0, ka []float64, strict ...bool) (*v3.Matrix, *v3.Matrix, *v3.Matrix, []float64, error) {
	n := qis.Len()
	if qj.Len() != 1 {
		return nil, nil, nil, nil, &ShapeError{term: "angle-vibration", message: "the central particle must be a single vector"}
	}
	if qks.Len() != n {
		return nil, nil, nil, nil, &ShapeError{term: "angle-vibration", message: "qis and qks must hold the same number of particles"}
	}
	if len(theta0) != n || len(ka) != n {
		return nil, nil, nil, nil, &ShapeError{term: "angle-vibration", message: "parameter batches must hold one element per triplet"}
	}
	fis := v3.Zeros(n)
	fks := v3.Zeros(n)
	fj := v3.Zeros(1)
	e := make([]float64, n)
	var bad []int
	u := v3.Zeros(1)
	v := v3.Zeros(1)
	for t := 0; t < n; t++ {
		u.Sub(qis.VecView(t), qj)
		v.Sub(qks.VecView(t), qj)
		du := u.Norm(2)
		dv := v.Norm(2)
		c := u.Dot(v) / (du * dv)
		//Take care of floating point math errors
		if math.Abs(c-1) <= appzero {
			c = 1
		} else if math.Abs(c+1) <= appzero {
			c = -1
		}
		theta := math.Acos(c)
		s := math.Sin(theta)
		if (du == 0 || dv == 0 || s == 0) && len(strict) > 0 && strict[0] {
			bad = append(bad, t)
			continue
		}
		delta := theta - theta0[t]
		e[t] = ka[t] * delta * delta
		coef := -2 * ka[t] * delta
		for m := 0; m < 3; m++ {
			uh := u.At(0, m) / du
			vh := v.At(0, m) / dv
			fim := coef * (c*uh - vh) / (du * s)
			fkm := coef * (c*vh - uh) / (dv * s)
			fis.Set(t, m, fim)
			fks.Set(t, m, fkm)
			fj.Set(0, m, fj.At(0, m)-fim-fkm)
		}
	}
	if bad != nil {
		return nil, nil, nil, nil, &DegenerateGeometryError{term: "angle-vibration", Pairs: bad}
	}
	return fj, fis, fks, e, nil
}

//Dihedral would calculate the dihedral-vibration potential for a number
//of particle-quadruplets. It is not implemented; calling it is a hard
//error, never a silently wrong answer.
func Dihedral(qi, qj, qk, ql *v3.Matrix, phi0, kd []float64) (*v3.Matrix, *v3.Matrix, *v3.Matrix, *v3.Matrix, []float64, error) {
	return nil, nil, nil, nil, nil, &NotImplementedError{term: "dihedral-vibration"}
}

//ImproperDihedral would calculate the improper-dihedral-vibration
//potential for a number of particle-quadruplets. It is not implemented;
//calling it is a hard error, never a silently wrong answer.
func ImproperDihedral(qi, qj, qk, ql *v3.Matrix, phi0, kd []float64) (*v3.Matrix, *v3.Matrix, *v3.Matrix, *v3.Matrix, []float64, error) {
	return nil, nil, nil, nil, nil, &NotImplementedError{term: "improper-dihedral-vibration"}
}
