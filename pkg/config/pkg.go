package config

// The configuration shared by a command and its subcommands. Root commands set it once
// after loading.
var configer Configer = &DotenvConfig{}

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}
