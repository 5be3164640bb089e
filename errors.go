/*
 * errors.go, part of mdforce.
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

import "fmt"

//Error is the interface fulfilled by all the errors of this package. The
//decoration slice contains the names of the functions the error has been
//passed through, to ease tracing it back to its origin.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//errDecorate asserts that err fulfills Error and decorates it with the
//caller's name before returning it. Used with an error from outside the
//package, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//ShapeError reports a violation of the shape contracts of the term
//functions: a reference matrix with more than one vector, or a parameter
//batch whose length does not match the number of interacting particles.
//These are caller bugs, so the error is critical.
type ShapeError struct {
	term    string
	message string
	deco    []string
}

func (err *ShapeError) Error() string {
	return fmt.Sprintf("mdforce: %s term: %s", err.term, err.message)
}

func (err *ShapeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ShapeError) Critical() bool { return true }

//DegenerateGeometryError reports, in strict mode only, a geometry for
//which the term is singular: coincident particles for the pair terms,
//coincident or collinear particles for the angle term. Pairs contains the
//batch indexes of the offending pairs/triplets.
type DegenerateGeometryError struct {
	term  string
	Pairs []int
	deco  []string
}

func (err *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("mdforce: %s term: degenerate geometry for pairs %v", err.term, err.Pairs)
}

func (err *DegenerateGeometryError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *DegenerateGeometryError) Critical() bool { return true }

//NotImplementedError reports a call to a force-field term that mdforce
//does not implement (dihedral and improper-dihedral vibrations).
type NotImplementedError struct {
	term string
	deco []string
}

func (err *NotImplementedError) Error() string {
	return fmt.Sprintf("mdforce: the %s term is not implemented", err.term)
}

func (err *NotImplementedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *NotImplementedError) Critical() bool { return true }
