/*
 * selection.go, part of fraggrow.
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

//Predicate tells whether an atom belongs to a selection.
type Predicate func(*Atom) bool

//Selection is an ordered set of atoms. The order is that of the
//structure or selection it was taken from. It may be empty.
type Selection []*Atom

//Select returns the atoms of S for which p is true, in structure order.
//A nil p selects every atom.
func Select(S *Structure, p Predicate) Selection {
	return Selection(S.Atoms).Select(p)
}

//Select returns the atoms of the selection for which p is true.
func (s Selection) Select(p Predicate) Selection {
	ret := make(Selection, 0, 4)
	for _, at := range s {
		if p == nil || p(at) {
			ret = append(ret, at)
		}
	}
	return ret
}

//Len returns the number of atoms in the selection.
func (s Selection) Len() int { return len(s) }

//Atoms returns the selected atoms as a plain slice.
func (s Selection) Atoms() []*Atom { return []*Atom(s) }

//Names returns the names of the selected atoms, in order.
func (s Selection) Names() []string {
	ret := make([]string, len(s))
	for i, at := range s {
		ret[i] = at.Name
	}
	return ret
}

//First returns the first atom of the selection or nil if it is empty.
func (s Selection) First() *Atom {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

//Name selects atoms with the given name.
func Name(name string) Predicate {
	return func(a *Atom) bool { return a.Name == name }
}

//Chain selects atoms in the given chain.
func Chain(chain string) Predicate {
	return func(a *Atom) bool { return a.Chain == chain }
}

//Resname selects atoms of residues with the given name.
func Resname(resname string) Predicate {
	return func(a *Atom) bool { return a.Resname == resname }
}

//Element selects atoms of the given element symbol.
func Element(symbol string) Predicate {
	symbol = normalizeSymbol(symbol)
	return func(a *Atom) bool { return a.Symbol == symbol }
}

//Hydrogen selects hydrogen (and deuterium) atoms.
func Hydrogen() Predicate {
	return (*Atom).IsHydrogen
}

//Protein selects atoms of standard aminoacidic residues.
func Protein() Predicate {
	return func(a *Atom) bool {
		_, ok := three2OneLetter[a.Resname]
		return ok
	}
}

//Within selects atoms at a distance of d or less from any of the
//reference atoms. The reference atoms themselves are selected too.
//With no reference atoms nothing is selected.
func Within(d float64, refs ...*Atom) Predicate {
	return func(a *Atom) bool {
		for _, r := range refs {
			if Distance(a, r) <= d {
				return true
			}
		}
		return false
	}
}

//And selects atoms for which all the predicates are true.
func And(ps ...Predicate) Predicate {
	return func(a *Atom) bool {
		for _, p := range ps {
			if p != nil && !p(a) {
				return false
			}
		}
		return true
	}
}

//Or selects atoms for which at least one of the predicates is true.
func Or(ps ...Predicate) Predicate {
	return func(a *Atom) bool {
		for _, p := range ps {
			if p != nil && p(a) {
				return true
			}
		}
		return false
	}
}

//Not selects atoms for which p is false.
func Not(p Predicate) Predicate {
	return func(a *Atom) bool { return !p(a) }
}
