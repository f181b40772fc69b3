package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys. Environment variables use the LCGBREAK_ prefix and upper
// case: LCGBREAK_DB, LCGBREAK_FORMAT, LCGBREAK_VERBOSE, LCGBREAK_MIN_SAMPLES.
const (
	keyDB         = "db"
	keyFormat     = "format"
	keyVerbose    = "verbose"
	keyMinSamples = "min_samples"

	envPrefix  = "LCGBREAK"
	configName = ".lcgbreak"
)

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"db":          keyDB,
	"format":      keyFormat,
	"verbose":     keyVerbose,
	"min-samples": keyMinSamples,
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for flag, key := range flagKeys {
		// Lookup cannot fail: every flag is declared just before binding.
		_ = v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag))
	}
}

// loadConfig resolves global options with precedence
// flags > environment > config file > defaults.
func loadConfig(v *viper.Viper, opts *RootOptions) error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("find home directory: %w", err)
	}

	v.SetDefault(keyDB, DefaultDBPath(home))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.AddConfigPath(home)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	opts.DB = v.GetString(keyDB)
	opts.Format = v.GetString(keyFormat)
	opts.Verbose = v.GetBool(keyVerbose)
	opts.MinSamples = v.GetInt(keyMinSamples)
	return nil
}

// DefaultDBPath returns the history database location under home.
func DefaultDBPath(home string) string {
	return filepath.Join(home, ".lcgbreak", "history.db")
}
