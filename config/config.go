// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to settings read from the environment, ex: CHIPSEQ_OUTPUT
	EnvPrefix = "CHIPSEQ"

	// DefaultOutput is the BED file written when no output path is given
	DefaultOutput = "TSS.bed"

	// DefaultFixturesDir is where the fixtures command writes test data
	DefaultFixturesDir = "chipseq-pipeline"
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and the command line. The input GTF is only ever taken from
// the required --gtf flag.
type Config struct {
	// path to the BED file of TSSs, "-" for stdout
	Output string `mapstructure:"output"`

	// directory the fixtures command writes into
	FixturesDir string `mapstructure:"fixtures-dir"`

	// whether to log a summary of each conversion
	Verbose bool `mapstructure:"verbose"`
}

// Setup sets defaults on v, binds the CHIPSEQ_ environment and reads
// settingsFile if one is given. A missing settings file is an error.
func Setup(v *viper.Viper, settingsFile string) error {
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("fixtures-dir", DefaultFixturesDir)
	v.SetDefault("verbose", false) // Unmarshal only sees env vars for known keys

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settingsFile == "" {
		return nil
	}
	v.SetConfigFile(settingsFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
// (settings file, environment and/or command line arguments)
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}
