package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by FromEnv.
const (
	EnvVehicleCount     = "ABC_VEHICLE_COUNT"
	EnvTrialLimit       = "ABC_TRIAL_LIMIT"
	EnvShuffle          = "ABC_SHUFFLE"
	EnvFitnessTolerance = "ABC_FITNESS_TOLERANCE"
	EnvSeed             = "ABC_SEED"
)

// FromEnv overlays the ABC_* environment variables on base and validates the
// result. The listed dotenv files (".env" when none are given) are loaded
// first; missing files are ignored and already-set variables are never
// overridden. Empty variables are treated as unset.
func FromEnv(base Config, files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	c := base
	var err error
	if c.VehicleCount, err = envInt(EnvVehicleCount, c.VehicleCount); err != nil {
		return Config{}, err
	}
	if c.TrialLimit, err = envInt(EnvTrialLimit, c.TrialLimit); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvShuffle); ok {
		c.Shuffle = v
	}
	if v, ok := lookup(EnvFitnessTolerance); ok {
		if c.FitnessTolerance, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvFitnessTolerance, v, ErrBadValue)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrBadValue)
		}
	}

	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envInt(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrBadValue)
	}
	return n, nil
}
