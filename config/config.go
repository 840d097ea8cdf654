// Package config handles the settings for the grabble executables and
// libraries. Settings come from defaults, an optional config file,
// GRABBLE_-prefixed environment variables, and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath       = "data-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigThreads        = "threads"
	ConfigDebug          = "debug"
	ConfigAliases        = "aliases"
	ConfigCPUProfile     = "cpu-profile"
	ConfigMemProfile     = "mem-profile"
)

const envPrefix = "grabble"

type Config struct {
	v *viper.Viper

	filepath string
	args     []string
}

// Load reads settings from every source. Leading -key value (or
// -key=value) pairs in args are treated as flag overrides; everything
// from the first non-flag token on is left alone for Args.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	c.v.SetDefault(ConfigDataPath, "./data")
	c.v.SetDefault(ConfigDefaultLexicon, "demo")
	c.v.SetDefault(ConfigThreads, runtime.NumCPU())
	c.v.SetDefault(ConfigDebug, false)

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	cfgdir, err := os.UserConfigDir()
	if err == nil {
		c.filepath = filepath.Join(cfgdir, "grabble", "config.yml")
		c.v.SetConfigFile(c.filepath)
		if err := c.v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Warn().Err(err).Str("path", c.filepath).Msg("could not read config file")
			}
		}
	}

	idx := 0
	for idx < len(args) {
		arg := args[idx]
		if !strings.HasPrefix(arg, "-") {
			break
		}
		key := strings.TrimLeft(arg, "-")
		if eq := strings.Index(key, "="); eq != -1 {
			c.v.Set(key[:eq], key[eq+1:])
			idx++
			continue
		}
		if idx+1 >= len(args) {
			return fmt.Errorf("flag -%s needs a value", key)
		}
		c.v.Set(key, args[idx+1])
		idx += 2
	}
	c.args = args[idx:]
	return nil
}

// Args returns the non-flag arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

// DefaultConfig returns a config with default settings, for tests and
// tools that don't parse a command line.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

func (c *Config) Get(key string) any {
	return c.v.Get(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetStringMapString(key string) map[string]string {
	return c.v.GetStringMapString(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Write saves the current settings to the user config file, creating
// its directory if needed.
func (c *Config) Write() error {
	if c.filepath == "" {
		return errors.New("no config file path could be determined")
	}
	if err := os.MkdirAll(filepath.Dir(c.filepath), 0755); err != nil {
		return err
	}
	return c.v.WriteConfigAs(c.filepath)
}

// WordlistPath returns the directory that wordlist files live in.
func (c *Config) WordlistPath() string {
	return filepath.Join(c.GetString(ConfigDataPath), "wordlists")
}

// AdjustRelativePaths rebases a relative data path onto the given
// executable directory, so the binary finds its data files no matter
// where it is invoked from.
func (c *Config) AdjustRelativePaths(exeDir string) {
	dataPath := c.GetString(ConfigDataPath)
	if !filepath.IsAbs(dataPath) {
		if _, err := os.Stat(dataPath); err == nil {
			// Relative to the working directory works too.
			return
		}
		c.v.Set(ConfigDataPath, filepath.Join(exeDir, dataPath))
	}
}

// SanitizedSettings returns the settings for display at startup.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.v.AllSettings()
	delete(settings, ConfigAliases)
	return settings
}
