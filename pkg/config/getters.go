package config

import (
	"strconv"

	"github.com/ael-launcher/catalog/pkg/clog"
)

// The Configer implementations only differ in how a raw key is looked up. The helpers
// below build the rest of the interface on top of that lookup.

func mustGetKey(getKey func(string) string, key string) string {
	val := getKey(key)
	if val == "" {
		clog.Global().Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func getKeyWithDefault(getKey func(string) string, key, defaultValue string) string {
	val := getKey(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func getIntKey(getKey func(string) string, key string) int {
	return getIntKeyWithDefault(getKey, key, 0)
}

func mustGetIntKey(getKey func(string) string, key string) int {
	val := getKey(key)
	intVal, err := strconv.Atoi(val)
	if err != nil {
		clog.Global().Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func getIntKeyWithDefault(getKey func(string) string, key string, defaultValue int) int {
	intVal, err := strconv.Atoi(getKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}
