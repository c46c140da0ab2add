/*
 * root.go, part of fraggrow.
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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	grow "github.com/rmera/fraggrow"
)

//app carries what the subcommands need, once the configuration is loaded.
type app struct {
	configPath string
	cfg        *Config
	zl         *zap.Logger
	log        grow.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:     "fraggrow",
		Short:   "Grow ligands by attaching fragments at chosen atoms",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.zl != nil {
				_ = a.zl.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	addConfigFlags(pf)
	cmd.AddCommand(newJoinCommand(a), newBatchCommand(a), newNamesCommand(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	zl, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.zl = cfg, zl
	a.log = grow.NewZapLogger(zl)
	a.log.Debug("configuration loaded", "file", a.configPath, "ligand_chain", cfg.LigandChain,
		"bond_cutoff", cfg.BondCutoff, "contact_cutoff", cfg.ContactCutoff)
	return nil
}

func printReport(cmd *cobra.Command, out string, rep *grow.Report) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: replaced core %s and fragment %s (anchor RMSD %.3f A)\n", out, rep.CoreHydrogen, rep.FragmentHydrogen, rep.AnchorRMSD)
	for _, old := range sortedKeys(rep.Names) {
		fmt.Fprintf(w, "  %-4s -> %s\n", old, rep.Names[old])
	}
	for _, old := range sortedKeys(rep.Collisions) {
		fmt.Fprintf(w, "  renamed repeated %s -> %s\n", old, rep.Collisions[old])
	}
	if rep.Components > 1 {
		fmt.Fprintf(w, "  warning: ligand has %d disconnected parts\n", rep.Components)
	}
}
