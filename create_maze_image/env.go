package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Flag defaults that may be overridden by MAZE_* environment variables.
type envDefaults struct {
	Difficulty string
	Seed       int64
	OutputFile string
	TilePixels int
}

func builtinDefaults() envDefaults {
	return envDefaults{
		Difficulty: "medium",
		Seed:       -1,
		OutputFile: "",
		TilePixels: 16,
	}
}

// Loads a .env file from the working directory, if there is one, then reads
// the flag defaults from the environment.
func loadEnvDefaults(log logrus.FieldLogger) (envDefaults, error) {
	e := godotenv.Load()
	if e != nil {
		log.WithError(e).Debug(".env file not found or could not be loaded")
	}
	return readEnvDefaults()
}

// Returns the flag defaults, replacing each built-in value with the matching
// environment variable when it's set.
func readEnvDefaults() (envDefaults, error) {
	toReturn := builtinDefaults()
	toReturn.Difficulty = getEnvWithDefault("MAZE_DIFFICULTY",
		toReturn.Difficulty)
	toReturn.OutputFile = getEnvWithDefault("MAZE_OUTPUT", toReturn.OutputFile)
	v, exists := os.LookupEnv("MAZE_SEED")
	if exists {
		seed, e := strconv.ParseInt(v, 10, 64)
		if e != nil {
			return toReturn, fmt.Errorf("Invalid MAZE_SEED %q: %w", v, e)
		}
		toReturn.Seed = seed
	}
	v, exists = os.LookupEnv("MAZE_TILE_PIXELS")
	if exists {
		pixels, e := strconv.Atoi(v)
		if e != nil {
			return toReturn, fmt.Errorf("Invalid MAZE_TILE_PIXELS %q: %w", v,
				e)
		}
		toReturn.TilePixels = pixels
	}
	return toReturn, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if exists {
		return value
	}
	return defaultValue
}
