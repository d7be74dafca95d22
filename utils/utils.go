package utils

import (
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type HostConfig struct {
	TickMillis int
	Players    int
	Seed       int64
}

type MathConfig struct {
	Float64EqualityThreshold float64
}

type Config struct {
	Host HostConfig
	Math MathConfig
}

func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(file, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
