package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Win condition
	Goal int `json:"goal"`

	// Starting conditions
	StartingBalance     int `json:"starting_balance"`
	PlotCount           int `json:"plot_count"`
	StartingWheatSeeds  int `json:"starting_wheat_seeds"`
	StartingPotatoSeeds int `json:"starting_potato_seeds"`

	// Overnight event thresholds over one uniform draw in [0,1)
	PestBelow float64 `json:"pest_below"`
	RainBelow float64 `json:"rain_below"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		Goal:                500,
		StartingBalance:     100,
		PlotCount:           4,
		StartingWheatSeeds:  5,
		StartingPotatoSeeds: 5,
		PestBelow:           0.15,
		RainBelow:           0.30,
	}
}

// Casual returns easier balance for casual difficulty
func Casual() Balance {
	cfg := Default()
	cfg.Goal = 300
	cfg.StartingBalance = 150
	cfg.PlotCount = 6
	cfg.PestBelow = 0.05
	cfg.RainBelow = 0.30
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.Goal = 800
	cfg.StartingBalance = 60
	cfg.PlotCount = 3
	cfg.PestBelow = 0.25
	cfg.RainBelow = 0.35
	return cfg
}
