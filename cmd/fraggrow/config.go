/*
 * config.go, part of fraggrow.
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
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	grow "github.com/rmera/fraggrow"
)

const envPrefix = "FRAGGROW"

//LogConfig selects the level and encoding of the log output.
type LogConfig struct {
	Level  string `mapstructure:"level"`  //debug, info, warn or error
	Format string `mapstructure:"format"` //json or console
}

//Config holds the settings of a fraggrow run. Values come, from lowest to
//highest priority, from the defaults, a YAML file, FRAGGROW_* environment
//variables and command line flags.
type Config struct {
	Log               LogConfig `mapstructure:"log"`
	LigandChain       string    `mapstructure:"ligand_chain"`
	FragmentChain     string    `mapstructure:"fragment_chain"`
	BondCutoff        float64   `mapstructure:"bond_cutoff"`
	ContactCutoff     float64   `mapstructure:"contact_cutoff"`
	CanonicalOrder    bool      `mapstructure:"canonical_order"`
	ResolveCollisions bool      `mapstructure:"resolve_collisions"`
	CheckConnectivity bool      `mapstructure:"check_connectivity"`
}

//newViper returns a viper reading YAML and FRAGGROW_ variables, where
//the key log.level is read from FRAGGROW_LOG_LEVEL.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	d := grow.DefaultOptions()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("ligand_chain", d.LigandChain)
	v.SetDefault("fragment_chain", d.FragmentChain)
	v.SetDefault("bond_cutoff", d.BondCutoff)
	v.SetDefault("contact_cutoff", d.ContactCutoff)
	v.SetDefault("canonical_order", d.CanonicalOrder)
	v.SetDefault("resolve_collisions", d.ResolveCollisions)
	v.SetDefault("check_connectivity", d.CheckConnectivity)
	return v
}

//flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":          "log.level",
	"log-format":         "log.format",
	"ligand-chain":       "ligand_chain",
	"fragment-chain":     "fragment_chain",
	"bond-cutoff":        "bond_cutoff",
	"contact-cutoff":     "contact_cutoff",
	"canonical-order":    "canonical_order",
	"resolve-collisions": "resolve_collisions",
	"check-connectivity": "check_connectivity",
}

//addConfigFlags registers the flags that override configuration keys.
func addConfigFlags(fs *pflag.FlagSet) {
	d := grow.DefaultOptions()
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
	fs.String("ligand-chain", d.LigandChain, "chain of the ligand in the core complex")
	fs.String("fragment-chain", d.FragmentChain, "chain of the fragment atoms")
	fs.Float64("bond-cutoff", d.BondCutoff, "maximum heavy atom-hydrogen distance, in A")
	fs.Float64("contact-cutoff", d.ContactCutoff, "hydrogen-protein distance considered a clash, in A")
	fs.Bool("canonical-order", d.CanonicalOrder, "try candidate hydrogens sorted by name")
	fs.Bool("resolve-collisions", d.ResolveCollisions, "rename repeated atom names in the grown ligand")
	fs.Bool("check-connectivity", d.CheckConnectivity, "warn if the grown ligand is not a single bonded unit")
}

//LoadConfig builds a Config. path is an optional YAML file; fs, if not nil,
//holds flags registered with addConfigFlags. Only flags set by the user
//override the other sources.
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: binding flag %s: %w", flag, err)
				}
			}
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

//ApplyDefaults fills the empty fields that have a usable default.
//Booleans are not touched, since false is a valid setting.
func ApplyDefaults(cfg *Config) {
	d := grow.DefaultOptions()
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.LigandChain == "" {
		cfg.LigandChain = d.LigandChain
	}
	if cfg.FragmentChain == "" {
		cfg.FragmentChain = d.FragmentChain
	}
	if cfg.BondCutoff == 0 {
		cfg.BondCutoff = d.BondCutoff
	}
}

//Validate checks the log settings and the growing options.
func (cfg *Config) Validate() error {
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", cfg.Log.Format)
	}
	return cfg.Options().Validate()
}

//Options returns the growing options in cfg.
func (cfg *Config) Options() *grow.Options {
	return &grow.Options{
		LigandChain:       cfg.LigandChain,
		FragmentChain:     cfg.FragmentChain,
		BondCutoff:        cfg.BondCutoff,
		ContactCutoff:     cfg.ContactCutoff,
		CanonicalOrder:    cfg.CanonicalOrder,
		ResolveCollisions: cfg.ResolveCollisions,
		CheckConnectivity: cfg.CheckConnectivity,
	}
}

//newLogger builds the zap logger described by cfg. Logs go to stderr, so
//they don't mix with reports printed on stdout.
func newLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Format == "console" {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Format == "console",
		Encoding:         cfg.Format,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return l, nil
}
