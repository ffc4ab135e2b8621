package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period         string            `json:"period"`
	EventCounts    map[EventType]int `json:"event_counts"`
	DayTicks       int               `json:"day_ticks"`
	Harvests       int               `json:"harvests"`
	HarvestsPerDay float64           `json:"harvests_per_day"`
	PestEvents     int               `json:"pest_events"`
	RainEvents     int               `json:"rain_events"`
	CoinsEarned    int               `json:"coins_earned"`
	CoinsSpent     int               `json:"coins_spent"`
	SeedsBought    map[string]int    `json:"seeds_bought"`
	HarvestsByCrop map[string]int    `json:"harvests_by_crop"`
	Wins           int               `json:"wins"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:         since.Format("2006-01-02"),
		EventCounts:    make(map[EventType]int),
		SeedsBought:    make(map[string]int),
		HarvestsByCrop: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventDayTick:
			stats.DayTicks++
		case EventCropHarvested:
			stats.Harvests++
			if crop, ok := metadata["crop"].(string); ok {
				stats.HarvestsByCrop[crop]++
			}
			if earned, ok := metadata["earned"].(float64); ok {
				stats.CoinsEarned += int(earned)
			}
		case EventSeedPurchased:
			if crop, ok := metadata["crop"].(string); ok {
				stats.SeedsBought[crop]++
			}
			if price, ok := metadata["price"].(float64); ok {
				stats.CoinsSpent += int(price)
			}
		case EventPestStruck:
			stats.PestEvents++
		case EventRainFell:
			stats.RainEvents++
		case EventGameWon:
			stats.Wins++
		}
	}

	if stats.DayTicks > 0 {
		stats.HarvestsPerDay = float64(stats.Harvests) / float64(stats.DayTicks)
	}

	return stats, nil
}
