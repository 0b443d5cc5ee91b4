package config

import (
	"fmt"
	"sync"
)

// MapConfig holds its keys in memory. Tests use it to hand a Configer to code without
// touching the environment.
type MapConfig struct {
	configValues sync.Map
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{}

	for key, entry := range entries {
		c.configValues.Store(key, entry)
	}

	return c
}

func (c *MapConfig) LoadFromPath(_ string) error {
	return fmt.Errorf("LoadFromPath not supported for MapConfig")
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) Set(key, value string) {
	c.configValues.Store(key, value)
}

func (c *MapConfig) GetKey(key string) string {
	v, ok := c.configValues.Load(key)
	if !ok || v == nil {
		return ""
	}

	s, _ := v.(string)
	return s
}

func (c *MapConfig) MustGetKey(key string) string {
	return mustGetKey(c.GetKey, key)
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	return getKeyWithDefault(c.GetKey, key, defaultValue)
}

func (c *MapConfig) GetIntKey(key string) int {
	return getIntKey(c.GetKey, key)
}

func (c *MapConfig) MustGetIntKey(key string) int {
	return mustGetIntKey(c.GetKey, key)
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return getIntKeyWithDefault(c.GetKey, key, defaultValue)
}
