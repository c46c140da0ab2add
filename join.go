/*
 * join.go, part of fraggrow.
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
	"errors"
	"fmt"
)

//Joiner grows a core ligand by attaching fragments to it.
type Joiner struct {
	Log  Logger
	O    *Options
	core *Resolver
	frag *Resolver
}

//NewJoiner returns a Joiner using O. A nil O means DefaultOptions().
func NewJoiner(log Logger, O *Options) *Joiner {
	if O == nil {
		O = DefaultOptions()
	}
	log = orNop(log)
	fo := *O
	fo.LigandChain = O.FragmentChain
	return &Joiner{
		Log:  log,
		O:    O,
		core: NewResolver(log, O),
		frag: NewResolver(log, &fo),
	}
}

//Report tells what Join did.
type Report struct {
	CoreHydrogen     string  //name of the hydrogen removed from the core
	FragmentHydrogen string  //name of the hydrogen removed from the fragment
	Names            NameMap //fragment atom names, original to G<n>
	Collisions       NameMap //names changed to avoid repetitions in the ligand
	AnchorRMSD       float64 //how well the bond vectors were superimposed, in A
	Components       int     //bonded units in the merged ligand, 0 if not checked
}

//Join attaches fragment to core. The growth points are the atom coreAtom of the
//core ligand and the atom fragAtom of the fragment. The fragment is rotated and
//translated so its heavy atom takes the place of the replaced core hydrogen and
//its own replaced hydrogen takes the place of the core growth atom. Both hydrogens
//are removed, the fragment atoms are renamed G0, G1... and become part of the core
//ligand residue. core and fragment are not modified; the merged structure is new.
func (J *Joiner) Join(core, fragment *Structure, coreAtom, fragAtom string) (*Structure, *Report, error) {
	if err := J.O.Validate(); err != nil {
		return nil, nil, newError(ErrPrecondition, "%s", err.Error())
	}
	core = core.Copy()
	fragment = fragment.Copy()
	rep := new(Report)

	coreHeavy, err := J.core.HeavyAtom(coreAtom, core)
	if err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	coreH, err := J.core.HydrogenOf(coreHeavy, core)
	if err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	fragHeavy, err := J.frag.HeavyAtom(fragAtom, fragment)
	if err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	fragH, err := J.frag.HydrogenOf(fragHeavy, fragment)
	if err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	rep.CoreHydrogen, rep.FragmentHydrogen = coreH.Name, fragH.Name

	fixed := []*Atom{coreHeavy, coreH}
	moving := []*Atom{fragH, fragHeavy}
	if _, err := Align(fixed, moving, fragment.Atoms); err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	if rep.AnchorRMSD, err = RMSD(Coords(moving), Coords(fixed)); err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	J.Log.Debug("fragment aligned", "core", coreHeavy.Name, "fragment", fragHeavy.Name, "rmsd", rep.AnchorRMSD)

	if err := core.Remove(coreH); err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	if err := fragment.Remove(fragH); err != nil {
		return nil, nil, errDecorate(err, "Join")
	}
	_, rep.Names = RenameResidue(fragment, fragHeavy.Resname)
	for _, at := range fragment.Atoms {
		at.Resname = coreHeavy.Resname
		at.Resid = coreHeavy.Resid
		at.Chain = coreHeavy.Chain
		at.Het = coreHeavy.Het
	}
	insertAfterResidue(core, fragment, coreHeavy)

	ligand := sameResidue(coreHeavy)
	if over := overlapping(Select(core, ligand)); len(over) > 0 {
		if !J.O.ResolveCollisions {
			return nil, nil, newError(ErrCollision, "repeated atom names in ligand: %v", sortedNames(over))
		}
		rep.Collisions = ResolveCollisions(core, ligand)
		J.Log.Info("repeated atom names in the ligand were changed", "renames", len(rep.Collisions))
	}
	if J.O.CheckConnectivity {
		comps, err := Components(Select(core, ligand))
		if err != nil {
			J.Log.Warn("could not check ligand connectivity", "error", err.Error())
		} else {
			rep.Components = len(comps)
			if len(comps) > 1 {
				J.Log.Warn("the grown ligand is not a single bonded unit", "units", len(comps))
			}
		}
	}
	return core, rep, nil
}

//insertAfterResidue moves the atoms of fragment into core, right after the
//last atom of the residue of anchor, so the ligand stays contiguous.
func insertAfterResidue(core, fragment *Structure, anchor *Atom) {
	same := sameResidue(anchor)
	last := -1
	for i, at := range core.Atoms {
		if same(at) {
			last = i
		}
	}
	if last < 0 || last == core.Len()-1 {
		core.Adopt(fragment)
		return
	}
	tail := append([]*Atom{}, core.Atoms[last+1:]...)
	core.Atoms = append(core.Atoms[:last+1], fragment.Atoms...)
	core.Atoms = append(core.Atoms, tail...)
	fragment.Atoms = nil
}

func sameResidue(ref *Atom) Predicate {
	return func(a *Atom) bool {
		return a.Chain == ref.Chain && a.Resid == ref.Resid && a.Resname == ref.Resname
	}
}

//JoinFiles reads the core and fragment PDB files, joins them, and writes the
//result to outname, in PDB format.
func (J *Joiner) JoinFiles(corename, fragname, coreAtom, fragAtom, outname string) (*Report, error) {
	core, err := PDBFileRead(corename)
	if err != nil {
		return nil, errDecorate(err, "JoinFiles")
	}
	frag, err := PDBFileRead(fragname)
	if err != nil {
		return nil, errDecorate(err, "JoinFiles")
	}
	merged, rep, err := J.Join(core, frag, coreAtom, fragAtom)
	if err != nil {
		return nil, errDecorate(err, "JoinFiles")
	}
	if err := PDBFileWrite(outname, merged); err != nil {
		return nil, errDecorate(err, "JoinFiles")
	}
	J.Log.Info("structure grown", "core", corename, "fragment", fragname, "output", outname,
		"core_hydrogen", rep.CoreHydrogen, "fragment_hydrogen", rep.FragmentHydrogen)
	return rep, nil
}

//Pair is one core/fragment join to be done by JoinBatch.
type Pair struct {
	Core, Fragment         string //PDB files
	CoreAtom, FragmentAtom string
	Out                    string
}

//BatchResult is the outcome of one Pair.
type BatchResult struct {
	Pair   Pair
	Report *Report
	Err    error
}

//JoinBatch joins each pair, one after the other. A failing pair doesn't stop
//the others. It returns one result per pair, in order, and an error joining
//all the failures, or nil if there were none.
func (J *Joiner) JoinBatch(pairs []Pair) ([]BatchResult, error) {
	ret := make([]BatchResult, 0, len(pairs))
	var errs []error
	for _, p := range pairs {
		rep, err := J.JoinFiles(p.Core, p.Fragment, p.CoreAtom, p.FragmentAtom, p.Out)
		if err != nil {
			J.Log.Warn("join failed", "core", p.Core, "fragment", p.Fragment, "error", err.Error())
			errs = append(errs, fmt.Errorf("%s + %s: %w", p.Core, p.Fragment, err))
		}
		ret = append(ret, BatchResult{Pair: p, Report: rep, Err: err})
	}
	return ret, errors.Join(errs...)
}
