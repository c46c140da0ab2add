/*
 * conversion.go, part of fraggrow.
 *
 * Copyright 2024 Raul Mera rauldotmeraatusachdotcl
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

package grow

import (
	v3 "github.com/rmera/fraggrow/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//This moves coordinates between the atoms of a Structure and the
//v3.Matrix used for rotations and translations. The order of the atoms is
//always kept.

//ExtractCoordinates returns the positions of atoms as triplets, in order.
func ExtractCoordinates(atoms []*Atom) [][3]float64 {
	ret := make([][3]float64, len(atoms))
	for i, at := range atoms {
		ret[i] = [3]float64{at.Pos.X, at.Pos.Y, at.Pos.Z}
	}
	return ret
}

//Coords returns a matrix with one row per atom, in order. It returns
//nil for an empty slice.
func Coords(atoms []*Atom) *v3.Matrix {
	if len(atoms) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(atoms))
	for _, at := range atoms {
		data = append(data, at.Pos.X, at.Pos.Y, at.Pos.Z)
	}
	m, _ := v3.NewMatrix(data) //can't fail, the length is right.
	return m
}

//SetCoords sets the position of each atom to the corresponding row of m.
//It fails with ErrPrecondition if the number of rows and atoms differ.
func SetCoords(atoms []*Atom, m *v3.Matrix) error {
	if m == nil {
		if len(atoms) == 0 {
			return nil
		}
		return newError(ErrPrecondition, "nil coordinates for %d atoms", len(atoms))
	}
	if n := m.NVecs(); n != len(atoms) {
		return newError(ErrPrecondition, "%d coordinates for %d atoms", n, len(atoms))
	}
	for i, at := range atoms {
		at.Pos = r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
	}
	return nil
}
