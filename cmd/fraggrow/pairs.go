/*
 * pairs.go, part of fraggrow.
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

package main

import (
	"fmt"
	"path/filepath"

	grow "github.com/rmera/fraggrow"
)

type pairConfig struct {
	Core         string `mapstructure:"core"`
	Fragment     string `mapstructure:"fragment"`
	CoreAtom     string `mapstructure:"core_atom"`
	FragmentAtom string `mapstructure:"fragment_atom"`
	Out          string `mapstructure:"out"`
}

//LoadPairs reads the list of joins in the YAML file path. Relative file
//names are taken from the directory of path. A pair without output file
//writes grown_<n>.pdb, n being its position in the list.
func LoadPairs(path string) ([]grow.Pair, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("pairs: failed to read %q: %w", path, err)
	}
	var pc struct {
		Pairs []pairConfig `mapstructure:"pairs"`
	}
	if err := v.Unmarshal(&pc); err != nil {
		return nil, fmt.Errorf("pairs: failed to unmarshal %q: %w", path, err)
	}
	if len(pc.Pairs) == 0 {
		return nil, fmt.Errorf("pairs: no pairs in %q", path)
	}
	base := filepath.Dir(path)
	rel := func(name string) string {
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(base, name)
	}
	ret := make([]grow.Pair, len(pc.Pairs))
	for i, p := range pc.Pairs {
		if p.Core == "" || p.Fragment == "" || p.CoreAtom == "" || p.FragmentAtom == "" {
			return nil, fmt.Errorf("pairs: entry %d of %q needs core, fragment, core_atom and fragment_atom", i, path)
		}
		if p.Out == "" {
			p.Out = fmt.Sprintf("grown_%d.pdb", i)
		}
		ret[i] = grow.Pair{
			Core:         rel(p.Core),
			Fragment:     rel(p.Fragment),
			CoreAtom:     p.CoreAtom,
			FragmentAtom: p.FragmentAtom,
			Out:          rel(p.Out),
		}
	}
	return ret, nil
}
