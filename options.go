/*
 * options.go, part of fraggrow.
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

import "fmt"

//Options contains the settings for Resolver and Joiner.
type Options struct {
	//Chain of the ligand in the core complex.
	LigandChain string
	//Chain of the fragment atoms in the fragment structure.
	FragmentChain string
	//Hydrogens closer than this (A) to the growth atom are bonded to it.
	BondCutoff float64
	//Protein atoms closer than this (A) to a hydrogen are a clash.
	ContactCutoff float64
	//Sort candidate hydrogens by name instead of using file order.
	CanonicalOrder bool
	//Rename repeated atom names in the merged ligand. If false, repeated names
	//make Join fail with ErrCollision.
	ResolveCollisions bool
	//Check that the merged ligand is a single bonded unit.
	CheckConnectivity bool
}

//DefaultOptions returns the settings used by the growing protocol.
func DefaultOptions() *Options {
	r := new(Options)
	r.LigandChain = "L"
	r.FragmentChain = "L"
	r.BondCutoff = 1.5
	r.ContactCutoff = 2.5
	r.CanonicalOrder = false
	r.ResolveCollisions = true
	r.CheckConnectivity = true
	return r
}

//Validate returns an error if the options can't be used.
func (O *Options) Validate() error {
	if O.BondCutoff <= 0 {
		return fmt.Errorf("bond cutoff must be positive, got %g", O.BondCutoff)
	}
	if O.ContactCutoff < 0 {
		return fmt.Errorf("contact cutoff must not be negative, got %g", O.ContactCutoff)
	}
	if len(O.LigandChain) > 1 || len(O.FragmentChain) > 1 {
		return fmt.Errorf("chain identifiers have one character, got %q and %q", O.LigandChain, O.FragmentChain)
	}
	return nil
}
