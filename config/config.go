// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to setting names when read from the environment, ex: OVERLAP_MIN_MATCH
	EnvPrefix = "OVERLAP"

	// DefaultThreads is the number of workers scoring the overlap matrix
	DefaultThreads = 1
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Fasta is the path to the reads to assemble
	Fasta string `mapstructure:"fasta"`

	// MinMatch is the smallest fraction of matching bases allowed in an overlap, (0, 1]
	MinMatch float64 `mapstructure:"min-match"`

	// Threads is the number of workers scoring the overlap matrix
	Threads int `mapstructure:"threads"`

	// Out is an optional path to write a JSON report to
	Out string `mapstructure:"out"`

	// Plot is an optional path to save a plot of contig lengths to
	Plot string `mapstructure:"plot"`

	// Verbose logs each merge to stderr
	Verbose bool `mapstructure:"verbose"`
}

// New returns a Config populated from v. If the "settings" key names a file,
// it's read first and overridden by flags and the environment.
func New(v *viper.Viper) (*Config, error) {
	// every key needs a default for the environment to be read on Unmarshal
	v.SetDefault("fasta", "")
	v.SetDefault("min-match", 0.0)
	v.SetDefault("threads", DefaultThreads)
	v.SetDefault("out", "")
	v.SetDefault("plot", "")
	v.SetDefault("verbose", false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	return c, nil
}

// Validate checks the settings needed for an assembly run.
func (c *Config) Validate() error {
	if c.Fasta == "" {
		return fmt.Errorf("an input file (-f) must be specified")
	}
	if c.MinMatch <= 0 || c.MinMatch > 1.0 {
		return fmt.Errorf("a smallest allowable fraction matching (-l) in (0.0, 1.0] must be specified, got %v", c.MinMatch)
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	return nil
}
