package config

import (
	"github.com/spf13/viper"
)

// ViperConfig reads keys from a config file (yaml, toml, json, ...) with environment
// variables taking precedence. It backs the --config flag of the commands.
type ViperConfig struct {
	v    *viper.Viper
	path string
}

func NewViperConfig(path string) *ViperConfig {
	v := viper.New()
	v.AutomaticEnv()
	return &ViperConfig{v: v, path: path}
}

func (c *ViperConfig) LoadFromPath(path string) error {
	c.path = path
	return c.Load()
}

// Load reads the config file. With no path set only the environment is consulted.
func (c *ViperConfig) Load() error {
	if c.path == "" {
		return nil
	}

	c.v.SetConfigFile(c.path)
	return c.v.ReadInConfig()
}

func (c *ViperConfig) GetKey(key string) string {
	return c.v.GetString(key)
}

func (c *ViperConfig) MustGetKey(key string) string {
	return mustGetKey(c.GetKey, key)
}

func (c *ViperConfig) GetKeyWithDefault(key, defaultValue string) string {
	return getKeyWithDefault(c.GetKey, key, defaultValue)
}

func (c *ViperConfig) GetIntKey(key string) int {
	return getIntKey(c.GetKey, key)
}

func (c *ViperConfig) MustGetIntKey(key string) int {
	return mustGetIntKey(c.GetKey, key)
}

func (c *ViperConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return getIntKeyWithDefault(c.GetKey, key, defaultValue)
}
