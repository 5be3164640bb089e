/*
 * distances_test.go, part of mdforce.
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
	"math/rand"
	"testing"

	v3 "github.com/Armin-Ariamajd/mdforce/v3"
)

//TestDisplacements checks the distance kernel against plain component
//arithmetic, for random batches and for the single-partner case.
func TestDisplacements(Te *testing.T) {
	rd := rand.New(rand.NewSource(1111))
	for i := 0; i < nTestRuns; i++ {
		qi := randomCoords(rd, 1)
		qjs := randomCoords(rd, 6)
		rel, dist := Displacements(qi, qjs)
		if rel.Len() != 6 || len(dist) != 6 {
			Te.Fatalf("Wrong output shapes: %d vectors, %d distances", rel.Len(), len(dist))
		}
		for k := 0; k < 6; k++ {
			var d2 float64
			for m := 0; m < 3; m++ {
				want := qi.At(0, m) - qjs.At(k, m)
				if !closeEnough(rel.At(k, m), want) {
					Te.Errorf("run %d: wrong displacement component: %v vs %v", i, rel.At(k, m), want)
				}
				d2 += want * want
			}
			if !closeEnough(dist[k], math.Sqrt(d2)) {
				Te.Errorf("run %d: wrong distance: %v vs %v", i, dist[k], math.Sqrt(d2))
			}
		}
	}
	//coincident points are not special-cased here
	qi, _ := v3.NewMatrix([]float64{1, 2, 3})
	qjs, _ := v3.NewMatrix([]float64{1, 2, 3})
	_, dist := Displacements(qi, qjs)
	if dist[0] != 0 {
		Te.Errorf("Expected a plain zero distance, got %v", dist[0])
	}
}
