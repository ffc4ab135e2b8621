package telemetry

import "time"

type EventType string

const (
	EventSeedPurchased EventType = "seed_purchased"
	EventCropPlanted   EventType = "crop_planted"
	EventCropHarvested EventType = "crop_harvested"
	EventDayTick       EventType = "day_tick"
	EventPestStruck    EventType = "pest_struck"
	EventRainFell      EventType = "rain_fell"
	EventGameWon       EventType = "game_won"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
