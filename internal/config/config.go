package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"farmstead/internal/model"
)

type Config struct {
	Version string                 `yaml:"version" json:"version"`
	World   WorldConfig            `yaml:"world" json:"world"`
	Events  EventsConfig           `yaml:"events" json:"events"`
	Crops   []model.CropDefinition `yaml:"crops" json:"crops"`
}

type WorldConfig struct {
	Goal            int                    `yaml:"goal" json:"goal"`
	StartingBalance int                    `yaml:"starting_balance" json:"starting_balance"`
	PlotCount       int                    `yaml:"plot_count" json:"plot_count"`
	StartingSeeds   map[model.CropKind]int `yaml:"starting_seeds" json:"starting_seeds"`
}

type EventsConfig struct {
	PestBelow float64 `yaml:"pest_below" json:"pest_below"`
	RainBelow float64 `yaml:"rain_below" json:"rain_below"`
	// Seed fixes the randomness source for reproducible sessions; 0 means
	// time-seeded.
	Seed int64 `yaml:"seed" json:"seed"`
}

func (c *Config) ApplyDefaults() {
	b := Default()
	if c.World.Goal == 0 {
		c.World.Goal = b.Goal
	}
	if c.World.StartingBalance == 0 {
		c.World.StartingBalance = b.StartingBalance
	}
	if c.World.PlotCount == 0 {
		c.World.PlotCount = b.PlotCount
	}
	if c.World.StartingSeeds == nil {
		c.World.StartingSeeds = map[model.CropKind]int{
			model.Wheat:  b.StartingWheatSeeds,
			model.Potato: b.StartingPotatoSeeds,
		}
	}
	if c.Events.PestBelow == 0 {
		c.Events.PestBelow = b.PestBelow
	}
	if c.Events.RainBelow == 0 {
		c.Events.RainBelow = b.RainBelow
	}
	if len(c.Crops) == 0 {
		c.Crops = model.DefaultCropDefinitions()
	}
}

// Validate checks cross-field consistency the yaml schema cannot express.
func (c *Config) Validate() error {
	if c.Events.PestBelow < 0 || c.Events.RainBelow > 1 {
		return fmt.Errorf("event thresholds must lie in [0,1]")
	}
	if c.Events.PestBelow > c.Events.RainBelow {
		return fmt.Errorf("pest_below (%v) must not exceed rain_below (%v)", c.Events.PestBelow, c.Events.RainBelow)
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	for kind := range c.World.StartingSeeds {
		if _, ok := catalog.Get(kind); !ok {
			return fmt.Errorf("starting seeds reference unknown crop: %s", kind)
		}
	}
	return nil
}

// Catalog builds the crop lookup table from the configured definitions.
func (c *Config) Catalog() (*model.Catalog, error) {
	return model.NewCatalog(c.Crops)
}

// StartingSeeds returns the configured starting inventory.
func (c *Config) StartingSeeds() model.Inventory {
	inv := make(model.Inventory, len(c.World.StartingSeeds))
	for k, v := range c.World.StartingSeeds {
		if v > 0 {
			inv[k] = v
		}
	}
	return inv
}

// NewConfig returns a config carrying all defaults.
func NewConfig() *Config {
	c := &Config{Version: "1"}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
