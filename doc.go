/*
 * doc.go, part of mdforce.
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

/*Package mdforce implements the individual terms of a general classical
force field, for use inside a molecular dynamics simulation.

Each term function takes the coordinates of a single "reference" particle i
and the coordinates of a batch of other, interacting particles js, together
with the per-pair parameters of the term, and returns the total force on i
due to all particles in js, the force on each particle in js due to i
(which, per Newton's third law, is the negative of the corresponding
per-pair force on i), and the potential energy of each particle pair. An
exception is AngleVibrationHarmonic, which works on particle triplets and
returns the force on each of the three particles involved.


    **Terms implemented**

    Coulomb electrostatics.

    Lennard-Jones (12-6) dispersion/repulsion.

    Harmonic bond vibration.

    Harmonic angle vibration (three-body).

    Dihedral and improper-dihedral terms are not implemented; calling them
    is a hard error.

For every pair term there is also a scalar, one-pair-at-a-time version
(CoulombPair, etc.) computed with plain component arithmetic. It is the
reference path the batched functions are tested against, and is convenient
for drivers that only need a single interaction.

The functions are pure: no state is kept between calls, nothing is written
anywhere, and concurrent calls are safe. Everything surrounding the kernels,
i.e. integration, neighbor lists, periodic boundaries and I/O, is the
caller's business.

Coordinates, displacements and forces are handled as v3.Matrix, where each
row is one particle (see the v3 subpackage). All quantities are assumed to
be in a consistent unit system; the Coulomb constant ke (1/4πε0) is taken
as an argument so the caller picks the units.

Coincident particles (zero distance) make the pair terms return infinite or
NaN forces and energies; such configurations are physically meaningless and
the kernels do not guard against them. Every exported term accepts an
optional trailing bool; passing true enables a strict mode that instead
returns a *DegenerateGeometryError naming the offending pairs.*/
package mdforce
