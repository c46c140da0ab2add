/*
 * hydrogens.go, part of fraggrow.
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

import "sort"

//Resolver finds the hydrogen that a new fragment replaces on a growth point.
type Resolver struct {
	Log         Logger
	LigandChain string
	//Hydrogens closer than BondCutoff (A) to the heavy atom are candidates.
	BondCutoff float64
	//Candidates with protein atoms closer than ContactCutoff (A) are avoided.
	ContactCutoff float64
	//CanonicalOrder sorts the candidates by name before choosing. Without it
	//the first acceptable candidate in file order wins, so two files with the
	//same molecule in different atom order may give different results.
	CanonicalOrder bool
}

//NewResolver returns a Resolver set up from O. A nil O means DefaultOptions().
func NewResolver(log Logger, O *Options) *Resolver {
	if O == nil {
		O = DefaultOptions()
	}
	return &Resolver{
		Log:            orNop(log),
		LigandChain:    O.LigandChain,
		BondCutoff:     O.BondCutoff,
		ContactCutoff:  O.ContactCutoff,
		CanonicalOrder: O.CanonicalOrder,
	}
}

//HeavyAtom returns the atom named name in the ligand chain of complex.
//It fails with ErrResolution if there is none.
func (R *Resolver) HeavyAtom(name string, complex *Structure) (*Atom, error) {
	heavy := Select(complex, And(Chain(R.LigandChain), Name(name)))
	if heavy.Len() == 0 {
		return nil, newError(ErrResolution, "no atom %q in chain %q of %s; check the core and fragment atom names", name, R.LigandChain, complex.Name)
	}
	if heavy.Len() > 1 {
		R.Log.Warn("atom name repeated in ligand chain, using the first one", "atom", name, "count", heavy.Len())
	}
	return heavy.First(), nil
}

//Candidates returns the hydrogens of the ligand chain at bonding distance
//of heavy, in the order they will be considered.
func (R *Resolver) Candidates(heavy *Atom, complex *Structure) Selection {
	cand := Select(complex, And(Chain(R.LigandChain), Hydrogen(), Within(R.BondCutoff, heavy)))
	if R.CanonicalOrder {
		sort.SliceStable(cand, func(i, j int) bool { return cand[i].Name < cand[j].Name })
	}
	return cand
}

//ResolveHydrogen returns the hydrogen bonded to the ligand atom named heavyName
//that should be replaced when growing from that atom. It fails with ErrResolution
//if there is no such atom, and with ErrNoHydrogen if the atom has no hydrogens.
func (R *Resolver) ResolveHydrogen(heavyName string, complex *Structure) (*Atom, error) {
	heavy, err := R.HeavyAtom(heavyName, complex)
	if err != nil {
		return nil, errDecorate(err, "ResolveHydrogen")
	}
	h, err := R.HydrogenOf(heavy, complex)
	if err != nil {
		return nil, errDecorate(err, "ResolveHydrogen")
	}
	return h, nil
}

//HydrogenOf returns the hydrogen of heavy to be replaced. When there are several
//candidates, the first one without protein atoms within ContactCutoff is returned.
//If all of them are in contact with the protein, the first one is returned anyway,
//with a warning. The choice is greedy: clashes are only detected, never compared.
func (R *Resolver) HydrogenOf(heavy *Atom, complex *Structure) (*Atom, error) {
	cand := R.Candidates(heavy, complex)
	switch cand.Len() {
	case 0:
		err := newError(ErrNoHydrogen, "no hydrogen within %.2f A of %s", R.BondCutoff, heavy)
		err.Decorate("HydrogenOf")
		return nil, err
	case 1:
		return cand[0], nil
	}
	protein := Select(complex, Protein())
	for _, h := range cand {
		contacts := protein.Select(Within(R.ContactCutoff, h))
		if contacts.Len() == 0 {
			R.Log.Debug("hydrogen chosen", "heavy", heavy.Name, "hydrogen", h.Name, "candidates", cand.Len())
			return h, nil
		}
		R.Log.Warn("hydrogen forms a close contact with the protein, trying to grow in another direction",
			"hydrogen", h.Name, "contacts", contacts.Len())
	}
	R.Log.Warn("all hydrogens clash with the protein, accepting the clash of the first one",
		"heavy", heavy.Name, "hydrogen", cand[0].Name)
	return cand[0], nil
}
