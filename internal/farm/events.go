package farm

import "farmstead/internal/model"

// EventKind names a random overnight event.
type EventKind string

const (
	EventPest EventKind = "pest"
	EventRain EventKind = "rain"
)

// EventPolicy holds the thresholds for the single uniform event draw made
// on each day tick. The three outcomes partition [0,1): pest below
// PestBelow, rain from PestBelow up to RainBelow, nothing above.
type EventPolicy struct {
	PestBelow float64
	RainBelow float64
}

// DefaultEventPolicy returns the stock event thresholds: 15% pest, 15% rain.
func DefaultEventPolicy() EventPolicy {
	return EventPolicy{PestBelow: 0.15, RainBelow: 0.30}
}

// EventOutcome reports the event that fired during a day tick.
type EventOutcome struct {
	Kind EventKind `json:"kind"`
	// PlotIndex is the plot damaged by a pest event, or -1 when the pest
	// found nothing still growing. Unused for rain.
	PlotIndex int            `json:"plotIndex"`
	Crop      model.CropKind `json:"crop,omitempty"`
}

// resolve draws one sample and applies the matching event to the farm.
// Returns nil when no event fires.
func (p EventPolicy) resolve(state *model.FarmState, catalog *model.Catalog, rng Rand) *EventOutcome {
	sample := rng.Float64()
	switch {
	case sample < p.PestBelow:
		return p.applyPest(state, catalog, rng)
	case sample < p.RainBelow:
		return p.applyRain(state)
	default:
		return nil
	}
}

// applyPest picks one still-growing plot uniformly at random and sets its
// growth back a day, floored at zero. A plot already at zero is a valid
// target; the decrement floors harmlessly.
func (p EventPolicy) applyPest(state *model.FarmState, catalog *model.Catalog, rng Rand) *EventOutcome {
	growing := make([]int, 0, len(state.Plots))
	for i, plot := range state.Plots {
		if plot.Empty() {
			continue
		}
		def, ok := catalog.Get(plot.Crop)
		if !ok {
			continue
		}
		if plot.Growth < def.GrowthDays {
			growing = append(growing, i)
		}
	}
	if len(growing) == 0 {
		return &EventOutcome{Kind: EventPest, PlotIndex: -1}
	}
	idx := growing[rng.Intn(len(growing))]
	plot := &state.Plots[idx]
	if plot.Growth > 0 {
		plot.Growth--
	}
	return &EventOutcome{Kind: EventPest, PlotIndex: idx, Crop: plot.Crop}
}

// applyRain waters every plot, occupied or not. Watering empty land is a
// harmless no-op by the same idempotent semantics as the water command.
func (p EventPolicy) applyRain(state *model.FarmState) *EventOutcome {
	for i := range state.Plots {
		state.Plots[i].Watered = true
	}
	return &EventOutcome{Kind: EventRain, PlotIndex: -1}
}
