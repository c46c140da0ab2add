/*
 * names.go, part of fraggrow.
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

func newNamesCommand(a *app) *cobra.Command {
	var resname, rename, out string
	var fix bool
	cmd := &cobra.Command{
		Use:   "names FILE",
		Short: "Report repeated atom names, optionally renaming atoms",
		Long: `Print the atom names repeated in FILE (or only among the atoms of residue
--resname). With --rename RES the atoms of residue RES are renamed G0, G1...
With --fix repeated names get a new number. The modified structure is
written to --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := grow.PDBFileRead(args[0])
			if err != nil {
				return err
			}
			var scope grow.Predicate
			if resname != "" {
				scope = grow.Resname(resname)
			}
			w := cmd.OutOrStdout()
			if rename != "" {
				_, names := grow.RenameResidue(S, rename)
				a.log.Info("residue renamed", "resname", rename, "atoms", len(names))
				for _, old := range sortedKeys(names) {
					fmt.Fprintf(w, "%-4s -> %s\n", old, names[old])
				}
			}
			over := grow.OverlappingNames(grow.NewStructure(S.Name, grow.Select(S, scope)...))
			if len(over) == 0 {
				fmt.Fprintln(w, "no repeated atom names")
			} else {
				names := make([]string, 0, len(over))
				for n := range over {
					names = append(names, n)
				}
				sort.Strings(names)
				fmt.Fprintf(w, "repeated atom names: %v\n", names)
			}
			if fix {
				renames := grow.ResolveCollisions(S, scope)
				for _, old := range sortedKeys(renames) {
					fmt.Fprintf(w, "renamed repeated %s -> %s\n", old, renames[old])
				}
			}
			if (fix || rename != "") && out != "" {
				return grow.PDBFileWrite(out, S)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&resname, "resname", "", "only consider atoms of this residue")
	f.StringVar(&rename, "rename", "", "rename the atoms of this residue G0, G1...")
	f.BoolVar(&fix, "fix", false, "give repeated names a new number")
	f.StringVarP(&out, "output", "o", "", "where to write the modified structure")
	return cmd
}
