/*
 * rename.go, part of fraggrow.
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
	"regexp"
	"sort"
	"strconv"
)

//NameMap maps original atom names to new ones, for one renaming pass.
type NameMap map[string]string

//RenameResidue names the atoms of the residues called resname G0, G1, G2... in
//structure order, and returns S and the old to new map. If an old name appears
//more than once, the map keeps the first one. If no atom matches, the map is
//empty and S is not touched. Renaming an already renamed residue numbers it
//again from G0.
func RenameResidue(S *Structure, resname string) (*Structure, NameMap) {
	names := NameMap{}
	for n, at := range Select(S, Resname(resname)) {
		newname := fmt.Sprintf("G%d", n)
		if _, ok := names[at.Name]; !ok {
			names[at.Name] = newname
		}
		at.Name = newname
	}
	return S, names
}

//OverlappingNames returns the set of atom names that appear more than once in S.
//An empty set means no collisions.
func OverlappingNames(S *Structure) map[string]struct{} {
	return overlapping(S.Atoms)
}

func overlapping(atoms []*Atom) map[string]struct{} {
	count := make(map[string]int, len(atoms))
	for _, at := range atoms {
		count[at.Name]++
	}
	ret := make(map[string]struct{})
	for name, c := range count {
		if c > 1 {
			ret[name] = struct{}{}
		}
	}
	return ret
}

//sortedNames returns the names in set, sorted.
func sortedNames(set map[string]struct{}) []string {
	ret := make([]string, 0, len(set))
	for k := range set {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

var nameNumber = regexp.MustCompile(`^(.*?)([0-9]*)$`)

//ResolveCollisions renames the atoms of S selected by scope (all the atoms, if scope
//is nil) whose names were already used by an earlier atom in the scope. The numeric
//suffix of the repeated name is increased until the name is unused in the scope,
//so a second C1 becomes C2 (or C3, if C2 exists), and a second O becomes O1.
//Names are kept within the 4 characters PDB allows by shortening the prefix.
//It returns the renames done, old name to new name, the first one for each
//old name.
func ResolveCollisions(S *Structure, scope Predicate) NameMap {
	atoms := Select(S, scope)
	used := make(map[string]bool, len(atoms))
	for _, at := range atoms {
		used[at.Name] = true
	}
	renames := NameMap{}
	seen := make(map[string]bool, len(atoms))
	for _, at := range atoms {
		if !seen[at.Name] {
			seen[at.Name] = true
			continue
		}
		m := nameNumber.FindStringSubmatch(at.Name)
		prefix := m[1]
		n := 0
		if m[2] != "" {
			n, _ = strconv.Atoi(m[2])
		}
		var newname string
		for {
			n++
			num := strconv.Itoa(n)
			p := prefix
			if len(p)+len(num) > 4 && len(num) < 4 {
				p = p[:4-len(num)]
			}
			newname = p + num
			if !used[newname] {
				break
			}
		}
		if _, ok := renames[at.Name]; !ok {
			renames[at.Name] = newname
		}
		used[newname] = true
		seen[newname] = true
		at.Name = newname
	}
	return renames
}
