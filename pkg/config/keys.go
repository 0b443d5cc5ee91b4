package config

import (
	"os"

	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/mitchellh/go-homedir"
)

// Configuration keys understood by the catalog client and the stub server.
const (
	KeyHost           = "AEL_HOST"
	KeyPort           = "AEL_PORT"
	KeyTimeoutSeconds = "AEL_TIMEOUT_SECONDS"
	KeyLogLevel       = "AEL_LOG_LEVEL"
	KeyLogFormat      = "AEL_LOG_FORMAT"
	KeyStubPort       = "AEL_STUB_PORT"
	KeyStubDBDriver   = "AEL_STUB_DB_DRIVER"
	KeyStubDBDSN      = "AEL_STUB_DB_DSN"
	KeyDotenvPath     = "AEL_DOTENV_PATH"
)

const (
	DefaultHost           = "localhost"
	DefaultPort           = 9876
	DefaultTimeoutSeconds = 30
	DefaultDotenvPath     = "~/.ael/catalog.env"
)

// LoadFromAELDotenv loads the dotenv file named by AEL_DOTENV_PATH, or
// ~/.ael/catalog.env when that isn't set, into the process environment. A missing
// default file is not an error; the environment alone is then used.
func LoadFromAELDotenv() (Configer, error) {
	path := os.Getenv(KeyDotenvPath)
	explicit := path != ""
	if !explicit {
		path = DefaultDotenvPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	c := NewDotenvConfig(expanded)
	if _, err := os.Stat(expanded); err != nil && !explicit {
		clog.Global().Debugf("No dotenv file at %s, using environment only", expanded)
		return c, nil
	}

	if err := c.Load(); err != nil {
		return nil, err
	}

	return c, nil
}

// MustLoadFromAELDotenv is LoadFromAELDotenv that exits the process on failure.
func MustLoadFromAELDotenv() Configer {
	c, err := LoadFromAELDotenv()
	if err != nil {
		clog.Global().Fatalf("Unable to load configuration: %s", err)
	}

	return c
}
