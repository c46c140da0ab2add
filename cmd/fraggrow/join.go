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

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	grow "github.com/rmera/fraggrow"
)

func newJoinCommand(a *app) *cobra.Command {
	var coreAtom, fragAtom, out string
	cmd := &cobra.Command{
		Use:   "join CORE FRAGMENT",
		Short: "Attach a fragment to a core ligand",
		Long: `Attach FRAGMENT to the ligand in CORE. The hydrogen bonded to the core atom
that doesn't clash with the protein is replaced by the fragment atom given,
and the fragment atoms are renamed G0, G1... Files ending in .gz or .zst
are read and written compressed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			J := grow.NewJoiner(a.log, a.cfg.Options())
			rep, err := J.JoinFiles(args[0], args[1], coreAtom, fragAtom, out)
			if err != nil {
				return err
			}
			printReport(cmd, out, rep)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&coreAtom, "core-atom", "c", "", "name of the core atom to grow from")
	f.StringVarP(&fragAtom, "fragment-atom", "f", "", "name of the fragment atom to attach")
	f.StringVarP(&out, "output", "o", "grown.pdb", "output PDB file")
	_ = cmd.MarkFlagRequired("core-atom")
	_ = cmd.MarkFlagRequired("fragment-atom")
	return cmd
}

func sortedKeys(m grow.NameMap) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func newBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch PAIRS",
		Short: "Run several independent joins listed in a YAML file",
		Long: `Run the joins listed in the YAML file PAIRS, which looks like

  pairs:
    - core: core.pdb
      fragment: frag1.pdb
      core_atom: C1
      fragment_atom: C1
      out: grown1.pdb

A failing join doesn't stop the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := LoadPairs(args[0])
			if err != nil {
				return err
			}
			J := grow.NewJoiner(a.log, a.cfg.Options())
			res, err := J.JoinBatch(pairs)
			for _, r := range res {
				if r.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: failed: %v\n", r.Pair.Out, r.Err)
					continue
				}
				printReport(cmd, r.Pair.Out, r.Report)
			}
			return err
		},
	}
}
