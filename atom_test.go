/*
 * atom_test.go, part of fraggrow.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const dir string = "test"

//at builds an atom for tests.
func at(name, symbol, resname, chain string, resid int, x, y, z float64) *Atom {
	return &Atom{Name: name, Symbol: symbol, Resname: resname, Chain: chain, Resid: resid, Pos: r3.Vec{X: x, Y: y, Z: z}}
}

func TestStructureRemoveAdopt(Te *testing.T) {
	a := at("C1", "C", "LIG", "L", 1, 0, 0, 0)
	b := at("H1", "H", "LIG", "L", 1, 1, 0, 0)
	c := at("O1", "O", "FRA", "L", 1, 2, 0, 0)
	S := NewStructure("core", a, b)
	F := NewStructure("frag", c)

	require.NoError(Te, S.Remove(b))
	assert.Equal(Te, []*Atom{a}, S.Atoms)
	assert.ErrorIs(Te, S.Remove(b), ErrPrecondition)

	S.Adopt(F)
	assert.Equal(Te, []*Atom{a, c}, S.Atoms)
	assert.Empty(Te, F.Atoms)
	assert.Equal(Te, 1, S.Index(c))
}

func TestStructureCopyAndResidues(Te *testing.T) {
	S := NewStructure("s",
		at("C1", "C", "LIG", "L", 1, 0, 0, 0),
		at("C2", "C", "LIG", "L", 1, 1, 0, 0),
		at("N", "N", "ALA", "A", 10, 2, 0, 0),
		at("CA", "C", "ALA", "A", 10, 3, 0, 0),
		at("N", "N", "GLY", "A", 11, 4, 0, 0),
	)
	res := S.Residues()
	require.Len(Te, res, 3)
	assert.Equal(Te, "LIG", res[0].Resname)
	assert.Len(Te, res[0].Atoms, 2)
	assert.Equal(Te, 11, res[2].Resid)

	C := S.Copy()
	C.Atoms[0].Name = "X"
	C.Atoms[0].Pos.X = 100
	assert.Equal(Te, "C1", S.Atoms[0].Name)
	assert.Equal(Te, 0.0, S.Atoms[0].Pos.X)
	assert.InDelta(Te, 1.0, Distance(S.Atoms[0], S.Atoms[1]), 1e-12)
}
