package config

import (
	"os"
	"strconv"

	"farmstead/internal/model"
)

// FromEnv loads balance configuration from environment variables
// Falls back to defaults if variables are not set
func FromEnv() Balance {
	cfg := Default()

	// Support preset modes first so individual vars can refine them
	if mode := os.Getenv("FARMSTEAD_DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			cfg = Casual()
		case "hard":
			cfg = Hard()
		}
	}

	if val := getEnvInt("FARMSTEAD_GOAL"); val > 0 {
		cfg.Goal = val
	}
	if val := getEnvInt("FARMSTEAD_STARTING_BALANCE"); val > 0 {
		cfg.StartingBalance = val
	}
	if val := getEnvInt("FARMSTEAD_PLOT_COUNT"); val > 0 {
		cfg.PlotCount = val
	}
	if val := getEnvInt("FARMSTEAD_STARTING_WHEAT_SEEDS"); val >= 0 && os.Getenv("FARMSTEAD_STARTING_WHEAT_SEEDS") != "" {
		cfg.StartingWheatSeeds = val
	}
	if val := getEnvInt("FARMSTEAD_STARTING_POTATO_SEEDS"); val >= 0 && os.Getenv("FARMSTEAD_STARTING_POTATO_SEEDS") != "" {
		cfg.StartingPotatoSeeds = val
	}
	if val := getEnvFloat("FARMSTEAD_PEST_BELOW"); val > 0 {
		cfg.PestBelow = val
	}
	if val := getEnvFloat("FARMSTEAD_RAIN_BELOW"); val > 0 {
		cfg.RainBelow = val
	}

	return cfg
}

// Apply overlays balance values onto a config.
func (c *Config) ApplyBalance(b Balance) {
	c.World.Goal = b.Goal
	c.World.StartingBalance = b.StartingBalance
	c.World.PlotCount = b.PlotCount
	c.World.StartingSeeds = map[model.CropKind]int{
		model.Wheat:  b.StartingWheatSeeds,
		model.Potato: b.StartingPotatoSeeds,
	}
	c.Events.PestBelow = b.PestBelow
	c.Events.RainBelow = b.RainBelow
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
