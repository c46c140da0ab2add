/*
 * join_test.go, part of fraggrow.
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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func fixtures(Te *testing.T) (*Structure, *Structure) {
	Te.Helper()
	core, err := PDBFileRead(filepath.Join(dir, "core_complex.pdb"))
	require.NoError(Te, err)
	frag, err := PDBFileRead(filepath.Join(dir, "fragment.pdb"))
	require.NoError(Te, err)
	return core, frag
}

func TestJoin(Te *testing.T) {
	core, frag := fixtures(Te)
	log, logs := observed(zapcore.WarnLevel)
	merged, rep, err := NewJoiner(log, nil).Join(core, frag, "C1", "C1")
	require.NoError(Te, err)

	assert.Equal(Te, "H2", rep.CoreHydrogen)
	assert.Equal(Te, "H1", rep.FragmentHydrogen)
	assert.Equal(Te, NameMap{"C1": "G0", "O1": "G1", "H2": "G2"}, rep.Names)
	assert.Empty(Te, rep.Collisions)
	assert.Equal(Te, 1, rep.Components)
	assert.Less(Te, rep.AnchorRMSD, 0.01)
	assert.Equal(Te,
		[]string{"C1", "C2", "H1", "H3", "H4", "G0", "G1", "G2", "N", "CA", "C", "O"},
		Select(merged, nil).Names())
	//only the H1 contact warning
	assert.Equal(Te, 1, logs.FilterMessageSnippet("close contact").Len())

	c1 := Select(merged, And(Chain("L"), Name("C1"))).First()
	g0 := Select(merged, Name("G0")).First()
	g1 := Select(merged, Name("G1")).First()
	require.NotNil(Te, g0)
	assertVec(Te, core.Atom(3).Pos, g0.Pos, 0.01)
	assert.InDelta(Te, 1.09, Distance(c1, g0), 0.01)
	assert.InDelta(Te, 2.52, Distance(c1, g1), 0.01)
	for _, a := range Select(merged, Resname("LIG")) {
		assert.Equal(Te, "L", a.Chain)
		assert.Equal(Te, 1, a.Resid)
		assert.Equal(Te, c1.Het, a.Het)
	}
	assert.Empty(Te, OverlappingNames(NewStructure("lig", Select(merged, Chain("L"))...)))

	//the inputs are untouched
	assert.Equal(Te, 10, core.Len())
	assert.Equal(Te, 4, frag.Len())
	assert.InDelta(Te, -1.09, frag.Atom(1).Pos.X, 1e-9)
	assert.Equal(Te, "C1", frag.Atom(0).Name)
	assert.Equal(Te, "FRA", frag.Atom(0).Resname)
}

func TestJoinCollisions(Te *testing.T) {
	core := NewStructure("core",
		at("C1", "C", "LIG", "L", 1, 0, 0, 0),
		at("H1", "H", "LIG", "L", 1, 1.09, 0, 0),
		at("G1", "C", "LIG", "L", 1, -1.52, 0, 0),
	)
	frag := NewStructure("frag",
		at("C1", "C", "FRA", "L", 1, 0, 0, 0),
		at("H1", "H", "FRA", "L", 1, -1.09, 0, 0),
		at("O1", "O", "FRA", "L", 1, 1.43, 0, 0),
	)
	O := DefaultOptions()
	O.ResolveCollisions = false
	_, _, err := NewJoiner(nil, O).Join(core, frag, "C1", "C1")
	assert.ErrorIs(Te, err, ErrCollision)

	merged, rep, err := NewJoiner(nil, nil).Join(core, frag, "C1", "C1")
	require.NoError(Te, err)
	assert.Equal(Te, NameMap{"G1": "G2"}, rep.Collisions)
	assert.Equal(Te, []string{"C1", "G1", "G0", "G2"}, Select(merged, nil).Names())
	assert.Equal(Te, 1, rep.Components)
	//the fragment atoms continue the core bond
	assertVec(Te, core.Atom(1).Pos, merged.Atom(2).Pos, 1e-9)
}

func TestJoinErrors(Te *testing.T) {
	core, frag := fixtures(Te)
	J := NewJoiner(nil, nil)
	_, _, err := J.Join(core, frag, "N", "C1")
	assert.ErrorIs(Te, err, ErrResolution)
	_, _, err = J.Join(core, frag, "C1", "XX")
	assert.ErrorIs(Te, err, ErrResolution)
	bare := NewStructure("bare", at("O1", "O", "FRA", "L", 1, 0, 0, 0))
	_, _, err = J.Join(core, bare, "C1", "O1")
	assert.ErrorIs(Te, err, ErrNoHydrogen)

	O := DefaultOptions()
	O.BondCutoff = 0
	_, _, err = NewJoiner(nil, O).Join(core, frag, "C1", "C1")
	assert.ErrorIs(Te, err, ErrPrecondition)

	O = DefaultOptions()
	O.CheckConnectivity = false
	_, rep, err := NewJoiner(nil, O).Join(core, frag, "C1", "C1")
	require.NoError(Te, err)
	assert.Equal(Te, 0, rep.Components)
}

func TestJoinFilesAndBatch(Te *testing.T) {
	tmp := Te.TempDir()
	out := filepath.Join(tmp, "grown.pdb.gz")
	J := NewJoiner(nil, nil)
	rep, err := J.JoinFiles(filepath.Join(dir, "core_complex.pdb"), filepath.Join(dir, "fragment.pdb"), "C1", "C1", out)
	require.NoError(Te, err)
	assert.Equal(Te, "H2", rep.CoreHydrogen)
	grown, err := PDBFileRead(out)
	require.NoError(Te, err)
	assert.Equal(Te, 12, grown.Len())
	assert.Equal(Te, "G0", grown.Atom(5).Name)

	pairs := []Pair{
		{Core: filepath.Join(dir, "core_complex.pdb"), Fragment: filepath.Join(dir, "fragment.pdb"), CoreAtom: "C1", FragmentAtom: "C1", Out: filepath.Join(tmp, "a.pdb")},
		{Core: filepath.Join(tmp, "missing.pdb"), Fragment: filepath.Join(dir, "fragment.pdb"), CoreAtom: "C1", FragmentAtom: "C1", Out: filepath.Join(tmp, "b.pdb")},
		{Core: filepath.Join(dir, "core_complex.pdb"), Fragment: filepath.Join(dir, "fragment.pdb"), CoreAtom: "C2", FragmentAtom: "C1", Out: filepath.Join(tmp, "c.pdb.zst")},
	}
	log, logs := observed(zapcore.WarnLevel)
	res, err := NewJoiner(log, nil).JoinBatch(pairs)
	assert.ErrorIs(Te, err, ErrParse)
	require.Len(Te, res, 3)
	assert.NoError(Te, res[0].Err)
	assert.ErrorIs(Te, res[1].Err, ErrParse)
	assert.Nil(Te, res[1].Report)
	require.NoError(Te, res[2].Err)
	assert.Equal(Te, "H4", res[2].Report.CoreHydrogen)
	assert.Equal(Te, 1, logs.FilterMessage("join failed").Len())
	_, err = PDBFileRead(filepath.Join(tmp, "c.pdb.zst"))
	assert.NoError(Te, err)
}
