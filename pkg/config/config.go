// Package config loads quill settings from an optional YAML file plus
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	DataDir  string      `mapstructure:"data_dir"`
	LogLevel string      `mapstructure:"log_level"`
	Store    StoreConfig `mapstructure:"store"`
}

// StoreConfig names the collection files inside the data directory.
type StoreConfig struct {
	NotesFile string `mapstructure:"notes_file"`
	TagsFile  string `mapstructure:"tags_file"`
}

// NotesPath returns the absolute path of the notes collection file.
func (c *Config) NotesPath() string {
	return filepath.Join(c.DataDir, c.Store.NotesFile)
}

// TagsPath returns the absolute path of the tags collection file.
func (c *Config) TagsPath() string {
	return filepath.Join(c.DataDir, c.Store.TagsFile)
}

// Load reads configuration from path. An empty path skips the file and
// uses defaults plus environment variables (QUILL_DATA_DIR and friends).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("store.notes_file", "notes.json")
	v.SetDefault("store.tags_file", "tags.json")

	v.SetEnvPrefix("quill")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".quill"
	}
	return filepath.Join(base, "quill")
}
