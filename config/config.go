// Package config loads food source settings from YAML documents and from the
// environment, and turns them into foodsource options.
//
// Precedence, lowest first: Default, a YAML file (Load/Parse), environment
// variables (FromEnv). A .env file only fills variables not already set in
// the process environment.
//
// Recognised keys:
//
//	YAML               ENV                    default
//	vehicle_count      ABC_VEHICLE_COUNT      1
//	trial_limit        ABC_TRIAL_LIMIT        foodsource.DefaultTrialLimit
//	shuffle            ABC_SHUFFLE            biased
//	fitness_tolerance  ABC_FITNESS_TOLERANCE  0
//	seed               ABC_SEED               0 (fixed default stream)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abcvrp/foodsource"
)

var (
	// ErrVehicleCount indicates vehicle_count < 1.
	ErrVehicleCount = errors.New("config: vehicle_count must be >= 1")

	// ErrTrialLimit indicates trial_limit < 0.
	ErrTrialLimit = errors.New("config: trial_limit must be >= 0")

	// ErrTolerance indicates a negative, infinite or NaN fitness_tolerance.
	ErrTolerance = errors.New("config: fitness_tolerance must be a finite non-negative number")

	// ErrBadValue indicates a value that could not be parsed.
	ErrBadValue = errors.New("config: malformed value")
)

// Config holds the tunables of a colony's food sources.
type Config struct {
	VehicleCount     int     `yaml:"vehicle_count"`
	TrialLimit       int     `yaml:"trial_limit"`
	Shuffle          string  `yaml:"shuffle"`
	FitnessTolerance float64 `yaml:"fitness_tolerance"`
	Seed             int64   `yaml:"seed"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		VehicleCount: 1,
		TrialLimit:   foodsource.DefaultTrialLimit,
		Shuffle:      foodsource.ShuffleBiased.String(),
	}
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected. An empty document yields Default.
func Parse(data []byte) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.VehicleCount < 1 {
		return fmt.Errorf("vehicle_count=%d: %w", c.VehicleCount, ErrVehicleCount)
	}
	if c.TrialLimit < 0 {
		return fmt.Errorf("trial_limit=%d: %w", c.TrialLimit, ErrTrialLimit)
	}
	if c.FitnessTolerance < 0 || math.IsNaN(c.FitnessTolerance) || math.IsInf(c.FitnessTolerance, 0) {
		return fmt.Errorf("fitness_tolerance=%v: %w", c.FitnessTolerance, ErrTolerance)
	}
	if _, err := foodsource.ParseShuffleMode(c.Shuffle); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts a validated Config into foodsource options.
// Options panics on an invalid Config, as the option constructors do;
// call Validate first on anything not produced by Parse, Load or FromEnv.
func (c Config) Options() []foodsource.Option {
	mode, err := foodsource.ParseShuffleMode(c.Shuffle)
	if err != nil {
		panic(err)
	}
	return []foodsource.Option{
		foodsource.WithTrialLimit(c.TrialLimit),
		foodsource.WithShuffle(mode),
		foodsource.WithFitnessTolerance(c.FitnessTolerance),
	}
}

// Rand returns the colony's base generator for c.Seed (see foodsource.NewRand).
func (c Config) Rand() *rand.Rand { return foodsource.NewRand(c.Seed) }
