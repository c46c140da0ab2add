/*
 * config_test.go, part of fraggrow.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(Te *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(Te, err)
	assert.Equal(Te, "info", cfg.Log.Level)
	assert.Equal(Te, "console", cfg.Log.Format)
	assert.Equal(Te, "L", cfg.LigandChain)
	assert.Equal(Te, 1.5, cfg.BondCutoff)
	assert.Equal(Te, 2.5, cfg.ContactCutoff)
	assert.True(Te, cfg.ResolveCollisions)
	assert.True(Te, cfg.CheckConnectivity)
	assert.False(Te, cfg.CanonicalOrder)
}

func TestLoadConfigPriority(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "fraggrow.yaml")
	yaml := []byte("log:\n  level: debug\n  format: json\nligand_chain: X\nbond_cutoff: 1.3\nresolve_collisions: false\n")
	require.NoError(Te, os.WriteFile(path, yaml, 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(Te, err)
	assert.Equal(Te, "debug", cfg.Log.Level)
	assert.Equal(Te, "json", cfg.Log.Format)
	assert.Equal(Te, "X", cfg.LigandChain)
	assert.Equal(Te, 1.3, cfg.BondCutoff)
	assert.False(Te, cfg.ResolveCollisions)

	Te.Setenv("FRAGGROW_LIGAND_CHAIN", "Y")
	Te.Setenv("FRAGGROW_LOG_LEVEL", "warn")
	cfg, err = LoadConfig(path, nil)
	require.NoError(Te, err)
	assert.Equal(Te, "Y", cfg.LigandChain)
	assert.Equal(Te, "warn", cfg.Log.Level)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addConfigFlags(fs)
	require.NoError(Te, fs.Parse([]string{"--ligand-chain", "Z", "--canonical-order"}))
	cfg, err = LoadConfig(path, fs)
	require.NoError(Te, err)
	assert.Equal(Te, "Z", cfg.LigandChain)
	assert.True(Te, cfg.CanonicalOrder)
	//flags left alone don't hide the file
	assert.Equal(Te, 1.3, cfg.BondCutoff)

	o := cfg.Options()
	assert.Equal(Te, "Z", o.LigandChain)
	assert.True(Te, o.CanonicalOrder)
}

func TestLoadConfigInvalid(Te *testing.T) {
	_, err := LoadConfig(filepath.Join(Te.TempDir(), "missing.yaml"), nil)
	assert.Error(Te, err)

	Te.Setenv("FRAGGROW_LOG_FORMAT", "xml")
	_, err = LoadConfig("", nil)
	assert.ErrorContains(Te, err, "log.format")

	Te.Setenv("FRAGGROW_LOG_FORMAT", "json")
	Te.Setenv("FRAGGROW_CONTACT_CUTOFF", "-1")
	_, err = LoadConfig("", nil)
	assert.ErrorContains(Te, err, "contact cutoff")
}

func TestNewLogger(Te *testing.T) {
	l, err := newLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(Te, err)
	assert.NotNil(Te, l)
	_, err = newLogger(LogConfig{Level: "loud", Format: "json"})
	assert.Error(Te, err)
}
