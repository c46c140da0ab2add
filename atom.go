/*
 * atom.go, part of fraggrow.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

//Atom contains the information read for one atom record. Only Name and Pos are
//changed after reading, by the renaming functions and by Align.
type Atom struct {
	Name      string
	ID        int //serial number in the file
	Symbol    string
	Resname   string
	Resid     int
	Chain     string
	Het       bool // is HETATM in the pdb file?
	Occupancy float64
	Bfactor   float64
	Pos       r3.Vec
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	n := *A
	return &n
}

//IsHydrogen returns true if the atom is a hydrogen.
func (A *Atom) IsHydrogen() bool {
	return A.Symbol == "H" || A.Symbol == "D"
}

//String returns a short identification of the atom, such as "L:LIG1:C1".
func (A *Atom) String() string {
	return fmt.Sprintf("%s:%s%d:%s", A.Chain, A.Resname, A.Resid, A.Name)
}

//Distance returns the euclidean distance between the atoms.
func Distance(a, b *Atom) float64 {
	return r3.Norm(r3.Sub(a.Pos, b.Pos))
}

//Structure is an ordered set of atoms. The order is the one in the
//file the structure was read from, and it matters: selections, renaming
//and duplicate detection all follow it.
type Structure struct {
	Name  string //usually the file the structure was read from
	Atoms []*Atom
}

//NewStructure returns a structure owning the given atoms.
func NewStructure(name string, atoms ...*Atom) *Structure {
	return &Structure{Name: name, Atoms: atoms}
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Index returns the position of at in the structure, or -1 if the
//structure doesn't own at.
func (S *Structure) Index(at *Atom) int {
	for i, v := range S.Atoms {
		if v == at {
			return i
		}
	}
	return -1
}

//Remove deletes at from the structure, keeping the order of the other atoms.
func (S *Structure) Remove(at *Atom) error {
	i := S.Index(at)
	if i < 0 {
		return newError(ErrPrecondition, "atom %s is not part of structure %s", at, S.Name)
	}
	S.Atoms = append(S.Atoms[:i], S.Atoms[i+1:]...)
	return nil
}

//Adopt moves all the atoms of other to the end of S. other is left empty,
//so every atom keeps belonging to one structure only.
func (S *Structure) Adopt(other *Structure) {
	if other == S {
		return
	}
	S.Atoms = append(S.Atoms, other.Atoms...)
	other.Atoms = nil
}

//Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	ret := &Structure{Name: S.Name, Atoms: make([]*Atom, len(S.Atoms))}
	for i, v := range S.Atoms {
		ret.Atoms[i] = v.Copy()
	}
	return ret
}

//Residue is a group of consecutive atoms sharing chain, residue
//number and residue name.
type Residue struct {
	Chain   string
	Resid   int
	Resname string
	Atoms   []*Atom
}

//Residues groups the atoms of the structure in residues, in structure order.
func (S *Structure) Residues() []*Residue {
	var ret []*Residue
	var cur *Residue
	for _, at := range S.Atoms {
		if cur == nil || cur.Chain != at.Chain || cur.Resid != at.Resid || cur.Resname != at.Resname {
			cur = &Residue{Chain: at.Chain, Resid: at.Resid, Resname: at.Resname}
			ret = append(ret, cur)
		}
		cur.Atoms = append(cur.Atoms, at)
	}
	return ret
}
