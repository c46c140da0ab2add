/*
 * geometric_test.go, part of fraggrow.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func distances(atoms []*Atom) []float64 {
	var ret []float64
	for i := range atoms {
		for j := i + 1; j < len(atoms); j++ {
			ret = append(ret, Distance(atoms[i], atoms[j]))
		}
	}
	return ret
}

func assertVec(Te *testing.T, want, got r3.Vec, tol float64, msgs ...interface{}) {
	Te.Helper()
	assert.InDelta(Te, want.X, got.X, tol, msgs...)
	assert.InDelta(Te, want.Y, got.Y, tol, msgs...)
	assert.InDelta(Te, want.Z, got.Z, tol, msgs...)
}

func TestAlignCollinear(Te *testing.T) {
	c1 := at("C1", "C", "LIG", "L", 1, 0, 0, 0)
	h1 := at("H1", "H", "LIG", "L", 1, 1, 0, 0)
	c2 := at("C2", "C", "FRA", "L", 1, 0, 0, 0)
	h2 := at("H2", "H", "FRA", "L", 1, -1, 0, 0)
	o1 := at("O1", "O", "FRA", "L", 1, -2, 0, 0)
	frag := []*Atom{c2, h2, o1}
	before := distances(frag)

	//The fragment hydrogen goes where the core heavy atom is, and
	//the fragment heavy atom where the core hydrogen was.
	ret, err := Align([]*Atom{c1, h1}, []*Atom{h2, c2}, frag)
	require.NoError(Te, err)
	assert.Equal(Te, frag, ret)
	assertVec(Te, r3.Vec{X: 1}, c2.Pos, 1e-9)
	assertVec(Te, r3.Vec{}, h2.Pos, 1e-9)
	assertVec(Te, r3.Vec{X: -1}, o1.Pos, 1e-9)
	assert.InDeltaSlice(Te, before, distances(frag), 1e-9)
	//the fixed atoms are not touched
	assertVec(Te, r3.Vec{}, c1.Pos, 0)
	assertVec(Te, r3.Vec{X: 1}, h1.Pos, 0)
}

func TestAlignGeneral(Te *testing.T) {
	fixedA := at("C1", "C", "LIG", "L", 1, 1, 2, 3)
	fixedB := at("H1", "H", "LIG", "L", 1, 1.5, 2.7, 3.6)
	ma := at("H2", "H", "FRA", "L", 1, -3, 0.5, 2)
	mb := at("C2", "C", "FRA", "L", 1, 0, 0, 0)
	frag := []*Atom{mb, ma,
		at("O1", "O", "FRA", "L", 1, 0.4, 1.3, -0.2),
		at("N1", "N", "FRA", "L", 1, 1.1, -0.8, 0.7),
	}
	//make both bonds the same length, so the points coincide after the fit.
	bdir := r3.Sub(fixedB.Pos, fixedA.Pos)
	ma.Pos = r3.Add(mb.Pos, r3.Scale(r3.Norm(bdir), r3.Unit(r3.Sub(ma.Pos, mb.Pos))))
	before := distances(frag)

	_, err := Align([]*Atom{fixedA, fixedB}, []*Atom{ma, mb}, frag)
	require.NoError(Te, err)
	assertVec(Te, fixedA.Pos, ma.Pos, 1e-9)
	assertVec(Te, fixedB.Pos, mb.Pos, 1e-9)
	assert.InDeltaSlice(Te, before, distances(frag), 1e-9)

	//A second alignment with the same vectors does nothing.
	first := ExtractCoordinates(frag)
	_, err = Align([]*Atom{fixedA, fixedB}, []*Atom{ma, mb}, frag)
	require.NoError(Te, err)
	for i, c := range ExtractCoordinates(frag) {
		for j := range c {
			assert.Less(Te, math.Abs(c[j]-first[i][j]), 1e-6)
		}
	}
}

func TestAlignAntiparallel(Te *testing.T) {
	fixedA := at("C1", "C", "LIG", "L", 1, 0, 0, 0)
	fixedB := at("H1", "H", "LIG", "L", 1, 0, 0, 1)
	ma := at("H2", "H", "FRA", "L", 1, 5, 5, 6)
	mb := at("C2", "C", "FRA", "L", 1, 5, 5, 5)
	other := at("O1", "O", "FRA", "L", 1, 6, 5, 5)
	frag := []*Atom{mb, ma, other}
	before := distances(frag)
	_, err := Align([]*Atom{fixedA, fixedB}, []*Atom{ma, mb}, frag)
	require.NoError(Te, err)
	assertVec(Te, fixedA.Pos, ma.Pos, 1e-9)
	assertVec(Te, fixedB.Pos, mb.Pos, 1e-9)
	assert.InDeltaSlice(Te, before, distances(frag), 1e-9)
}

func TestAlignPreconditions(Te *testing.T) {
	c1 := at("C1", "C", "LIG", "L", 1, 0, 0, 0)
	h1 := at("H1", "H", "LIG", "L", 1, 1, 0, 0)
	c2 := at("C2", "C", "FRA", "L", 1, 3, 3, 3)
	h2 := at("H2", "H", "FRA", "L", 1, 3, 3, 4)
	frag := []*Atom{c2, h2}
	orig := ExtractCoordinates(frag)

	_, err := Align([]*Atom{c1}, []*Atom{h2, c2}, frag)
	assert.ErrorIs(Te, err, ErrPrecondition)
	_, err = Align([]*Atom{c1, h1}, []*Atom{h2, c2, h2}, frag)
	assert.ErrorIs(Te, err, ErrPrecondition)
	_, err = Align([]*Atom{c1, c1}, []*Atom{h2, c2}, frag)
	assert.ErrorIs(Te, err, ErrPrecondition)
	_, err = Align([]*Atom{c1, h1}, []*Atom{h2, c2}, []*Atom{c2, h2, c1})
	assert.ErrorIs(Te, err, ErrPrecondition)
	_, err = Align([]*Atom{c1, nil}, []*Atom{h2, c2}, frag)
	assert.ErrorIs(Te, err, ErrPrecondition)
	nan := at("X", "C", "LIG", "L", 1, math.NaN(), 0, 0)
	_, err = Align([]*Atom{c1, nan}, []*Atom{h2, c2}, frag)
	assert.ErrorIs(Te, err, ErrPrecondition)

	//nothing moved
	assert.Equal(Te, orig, ExtractCoordinates(frag))
	assertVec(Te, r3.Vec{}, c1.Pos, 0)

	ret, err := Align([]*Atom{c1, h1}, []*Atom{h2, c2}, nil)
	assert.NoError(Te, err)
	assert.Empty(Te, ret)
}

func TestRMSD(Te *testing.T) {
	a := Coords([]*Atom{at("A", "C", "X", "", 1, 0, 0, 0), at("B", "C", "X", "", 1, 1, 0, 0)})
	b := Coords([]*Atom{at("A", "C", "X", "", 1, 0, 0, 1), at("B", "C", "X", "", 1, 1, 0, 1)})
	r, err := RMSD(a, b)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, r, 1e-12)
	_, err = RMSD(a, Coords([]*Atom{at("A", "C", "X", "", 1, 0, 0, 0)}))
	assert.ErrorIs(Te, err, ErrPrecondition)
}
