/*
 * profile.go, part of mdforce.
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

//Package ffplot draws potential-energy and force profiles of the mdforce
//pair terms over a range of interparticle distances. It is meant for
//quick visual sanity checks of a parameterization, say, eyeballing the
//well depth and minimum of a Lennard-Jones pair before running anything.
package ffplot

import (
	"fmt"
	"image/color"

	"github.com/Armin-Ariamajd/mdforce"
	v3 "github.com/Armin-Ariamajd/mdforce/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//PairTerm is any function evaluating a pair interaction for two particles:
//it returns the force on each of them and the pair potential energy. The
//mdforce *Pair functions, with their parameters bound, have this shape.
type PairTerm func(qi, qj *v3.Matrix) (*v3.Matrix, *v3.Matrix, float64)

func basicProfilePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Distance"
	p.Y.Label.Text = "Energy / radial force"
	p.Add(plotter.NewGrid())
	return p
}

//Profile samples term at points equally-spaced distances in [rmin, rmax]
//and saves a plot of the pair energy and the radial force on the second
//particle (positive means repulsion) to plotname.png. The first particle
//sits at the origin and the second on the x axis, which loses no
//generality since every mdforce pair term is radially symmetric.
func Profile(term PairTerm, rmin, rmax float64, points int, title, plotname string) error {
	if points < 2 {
		return fmt.Errorf("ffplot: need at least 2 points, got %d", points)
	}
	if rmin <= 0 || rmax <= rmin {
		return fmt.Errorf("ffplot: invalid distance range [%v, %v]", rmin, rmax)
	}
	qi := v3.Zeros(1)
	qj := v3.Zeros(1)
	energies := make(plotter.XYs, points)
	forces := make(plotter.XYs, points)
	step := (rmax - rmin) / float64(points-1)
	for i := 0; i < points; i++ {
		r := rmin + step*float64(i)
		qj.Set(0, 0, r)
		_, fj, e := term(qi, qj)
		energies[i] = plotter.XY{X: r, Y: e}
		forces[i] = plotter.XY{X: r, Y: fj.At(0, 0)}
	}
	p := basicProfilePlot(title)
	le, err := plotter.NewLine(energies)
	if err != nil {
		return err
	}
	le.LineStyle.Color = color.RGBA{B: 255, A: 255}
	lf, err := plotter.NewLine(forces)
	if err != nil {
		return err
	}
	lf.LineStyle.Color = color.RGBA{R: 255, A: 255}
	lf.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
	p.Add(le, lf)
	p.Legend.Add("energy", le)
	p.Legend.Add("radial force", lf)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}

//CoulombProfile plots the Coulomb pair term for charges ci and cj and
//Coulomb constant ke. See Profile for the other arguments.
func CoulombProfile(ci, cj, ke, rmin, rmax float64, points int, title, plotname string) error {
	term := func(qi, qj *v3.Matrix) (*v3.Matrix, *v3.Matrix, float64) {
		return mdforce.CoulombPair(qi, qj, ci, cj, ke)
	}
	return Profile(term, rmin, rmax, points, title, plotname)
}

//LennardJonesProfile plots the 12-6 Lennard-Jones pair term with the A
//and B coefficients a and b. See Profile for the other arguments.
func LennardJonesProfile(a, b, rmin, rmax float64, points int, title, plotname string) error {
	term := func(qi, qj *v3.Matrix) (*v3.Matrix, *v3.Matrix, float64) {
		return mdforce.LennardJonesPair(qi, qj, a, b)
	}
	return Profile(term, rmin, rmax, points, title, plotname)
}

//BondVibrationProfile plots the harmonic bond pair term with equilibrium
//length d0 and force constant kb. See Profile for the other arguments.
func BondVibrationProfile(d0, kb, rmin, rmax float64, points int, title, plotname string) error {
	term := func(qi, qj *v3.Matrix) (*v3.Matrix, *v3.Matrix, float64) {
		return mdforce.BondVibrationHarmonicPair(qi, qj, d0, kb)
	}
	return Profile(term, rmin, rmax, points, title, plotname)
}
