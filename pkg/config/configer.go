package config

// Configer is a source of AEL_* settings. Implementations differ only in where the keys
// come from: a dotenv file, a viper config file, or an in-memory map.
//
// The Must variants exit the process when a key is missing or not an int. The
// WithDefault variants return defaultValue in that case.
type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKey(key string) int
	MustGetIntKey(key string) int
	GetIntKeyWithDefault(key string, defaultValue int) int
}

var (
	_ Configer = (*DotenvConfig)(nil)
	_ Configer = (*ViperConfig)(nil)
	_ Configer = (*MapConfig)(nil)
)
