/*
 * bonds.go, part of fraggrow.
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
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond joins two atoms. Bonds are assigned from distances only, the order
//is not determined.
type Bond struct {
	At1  *Atom
	At2  *Atom
	Dist float64
}

//AssignBonds returns the bonds between atoms, based on a simple distance
//criterion similar to that described in DOI:10.1186/1758-2946-3-33.
//It is quadratic in the number of atoms, so it is meant for ligands,
//not for whole proteins.
func AssignBonds(atoms []*Atom) ([]*Bond, error) {
	bonds := make([]*Bond, 0, len(atoms))
	for i, at1 := range atoms {
		cov1, ok := symbolCovrad[at1.Symbol]
		if !ok {
			return nil, newError(ErrPrecondition, "couldn't find the covalent radius for %s (%q)", at1, at1.Symbol)
		}
		for _, at2 := range atoms[i+1:] {
			cov2, ok := symbolCovrad[at2.Symbol]
			if !ok {
				return nil, newError(ErrPrecondition, "couldn't find the covalent radius for %s (%q)", at2, at2.Symbol)
			}
			d := Distance(at1, at2)
			if d < cov1+cov2+bondtol && d > tooclose {
				bonds = append(bonds, &Bond{At1: at1, At2: at2, Dist: d})
			}
		}
	}
	return bonds, nil
}

//BondGraph returns an undirected graph with one node per atom, with ID equal
//to the index of the atom in atoms, and one edge per bond.
func BondGraph(atoms []*Atom) (*simple.UndirectedGraph, error) {
	bonds, err := AssignBonds(atoms)
	if err != nil {
		return nil, errDecorate(err, "BondGraph")
	}
	index := make(map[*Atom]int64, len(atoms))
	g := simple.NewUndirectedGraph()
	for i, at := range atoms {
		index[at] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, b := range bonds {
		g.SetEdge(simple.Edge{F: simple.Node(index[b.At1]), T: simple.Node(index[b.At2])})
	}
	return g, nil
}

//Components returns the groups of atoms connected by bonds. The groups are
//ordered by their first atom, and the atoms in each group keep their order.
func Components(atoms []*Atom) ([][]*Atom, error) {
	g, err := BondGraph(atoms)
	if err != nil {
		return nil, errDecorate(err, "Components")
	}
	ccs := topo.ConnectedComponents(g)
	ret := make([][]*Atom, 0, len(ccs))
	for _, cc := range ccs {
		ids := make([]int, len(cc))
		for i, n := range cc {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		group := make([]*Atom, len(ids))
		for i, id := range ids {
			group[i] = atoms[id]
		}
		ret = append(ret, group)
	}
	sort.Slice(ret, func(i, j int) bool {
		return indexOf(atoms, ret[i][0]) < indexOf(atoms, ret[j][0])
	})
	return ret, nil
}

func indexOf(atoms []*Atom, at *Atom) int {
	for i, v := range atoms {
		if v == at {
			return i
		}
	}
	return -1
}
