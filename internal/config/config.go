package config

import (
	"os"
)

type Config struct {
	Port   string
	DBPath string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults suit a local single-node run; the sqlite file lands in the
	// working directory.
	env := Config{
		Port:   "9446",
		DBPath: "smartspend.db",
	}

	envPort := os.Getenv("SMARTSPEND_PORT")
	envDBPath := os.Getenv("SMARTSPEND_DB_PATH")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envDBPath) != 0 {
		env.DBPath = envDBPath
	}

	return &env, nil
}
