/*
 * profile_test.go, part of mdforce.
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

package ffplot

import (
	"os"
	"path/filepath"
	"testing"
)

//TestProfiles draws one profile per pair term and checks that the files
//come out non-empty.
func TestProfiles(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "coulomb")
	if err := CoulombProfile(1, 1, 1, 0.5, 5, 100, "Coulomb, unit charges", name); err != nil {
		Te.Error(err)
	}
	checkPlotFile(Te, name)
	name = filepath.Join(dir, "lj")
	//A and B for a well of depth 1 at distance 1: A = eps*d0^12, B = 2*eps*d0^6
	if err := LennardJonesProfile(1, 2, 0.9, 3, 100, "Lennard-Jones", name); err != nil {
		Te.Error(err)
	}
	checkPlotFile(Te, name)
	name = filepath.Join(dir, "bond")
	if err := BondVibrationProfile(1.5, 10, 0.5, 3, 100, "Harmonic bond", name); err != nil {
		Te.Error(err)
	}
	checkPlotFile(Te, name)
}

//TestProfileBadRange checks the argument validation.
func TestProfileBadRange(Te *testing.T) {
	if err := CoulombProfile(1, 1, 1, 0, 5, 100, "bad", "bad"); err == nil {
		Te.Error("Expected an error for rmin = 0")
	}
	if err := CoulombProfile(1, 1, 1, 1, 5, 1, "bad", "bad"); err == nil {
		Te.Error("Expected an error for a single point")
	}
}

func checkPlotFile(Te *testing.T, name string) {
	st, err := os.Stat(name + ".png")
	if err != nil {
		Te.Error(err)
		return
	}
	if st.Size() == 0 {
		Te.Errorf("Empty plot file %s.png", name)
	}
}
