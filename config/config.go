// Package config loads the settings of the arraylist command from the
// environment and from .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sarchlab/arraylist/list"
)

// Names of the environment variables that configure the command.
const (
	EnvPort           = "ARRAYLIST_PORT"
	EnvDB             = "ARRAYLIST_DB"
	EnvMaxCapacity    = "ARRAYLIST_MAX_CAPACITY"
	EnvMemoryHeadroom = "ARRAYLIST_MEMORY_HEADROOM"
)

// DefaultMemoryHeadroom is the number of bytes the memory guard keeps free.
const DefaultMemoryHeadroom uint64 = 256 << 20

// Config holds the settings of the command.
type Config struct {
	// Port of the monitoring server. 0 picks a random port.
	Port int

	// DBPath is the path of the trace database, without the .sqlite3
	// extension. An empty path lets the recorder generate one.
	DBPath string

	MaxCapacity    int
	MemoryHeadroom uint64
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxCapacity:    list.SoftMaxArrayLength,
		MemoryHeadroom: DefaultMemoryHeadroom,
	}
}

// Load reads the given .env files into the environment and builds a Config
// from it. Variables already set in the environment win over the files. With
// no files, a .env file in the working directory is read if there is one.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}

	if len(files) > 0 {
		err := godotenv.Load(files...)
		if err != nil {
			return Config{}, fmt.Errorf("loading env files: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	c := Default()

	var err error

	if v, ok := os.LookupEnv(EnvPort); ok {
		c.Port, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, envError(EnvPort, v, err)
		}
	}

	if v, ok := os.LookupEnv(EnvDB); ok {
		c.DBPath = v
	}

	if v, ok := os.LookupEnv(EnvMaxCapacity); ok {
		c.MaxCapacity, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, envError(EnvMaxCapacity, v, err)
		}

		if c.MaxCapacity <= 0 {
			return Config{}, envError(EnvMaxCapacity, v,
				errors.New("must be positive"))
		}
	}

	if v, ok := os.LookupEnv(EnvMemoryHeadroom); ok {
		c.MemoryHeadroom, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, envError(EnvMemoryHeadroom, v, err)
		}
	}

	return c, nil
}

func envError(name, value string, err error) error {
	return fmt.Errorf("invalid %s=%q: %w", name, value, err)
}
