package farm

import (
	"farmstead/internal/model"
	"farmstead/internal/telemetry"
)

// PlotGrowth is one plot's outcome from a day tick.
type PlotGrowth struct {
	Index  int            `json:"index"`
	Crop   model.CropKind `json:"crop"`
	Grew   bool           `json:"grew"`
	Growth int            `json:"growth"`
	Ready  bool           `json:"ready"`
}

// DayReport is the ordered result of one day tick.
type DayReport struct {
	Day    int           `json:"day"`
	Growth []PlotGrowth  `json:"growth"`
	Event  *EventOutcome `json:"event,omitempty"`
	Won    bool          `json:"won"`
	Done   bool          `json:"done"`
}

// AdvanceDay runs one atomic day transition: the day counter advances,
// watered crops grow (capped at their growth duration), soil dries out,
// the overnight event resolves, and the win condition is checked. Given a
// valid internal state the tick itself cannot fail.
func (e *Engine) AdvanceDay() DayReport {
	e.state.Day++

	growth := make([]PlotGrowth, 0, len(e.state.Plots))
	for i := range e.state.Plots {
		plot := &e.state.Plots[i]
		if plot.Empty() {
			continue
		}
		def, ok := e.catalog.Get(plot.Crop)
		if !ok {
			continue
		}
		grew := false
		if plot.Watered && plot.Growth < def.GrowthDays {
			plot.Growth++
			grew = true
		}
		growth = append(growth, PlotGrowth{
			Index:  i,
			Crop:   plot.Crop,
			Grew:   grew,
			Growth: plot.Growth,
			Ready:  plot.Growth >= def.GrowthDays,
		})
	}

	// Soil dries overnight, after growth has consumed the watered flags.
	for i := range e.state.Plots {
		e.state.Plots[i].Watered = false
	}

	event := e.events.resolve(e.state, e.catalog, e.rng)

	won := e.state.Balance >= e.rules.Goal
	if won {
		e.state.Done = true
	}
	e.commit()

	meta := telemetry.EventMetadata{"day": e.state.Day, "balance": e.state.Balance}
	if event != nil {
		meta["event"] = string(event.Kind)
	}
	e.record(telemetry.EventDayTick, meta)
	if event != nil {
		switch event.Kind {
		case EventPest:
			e.record(telemetry.EventPestStruck, telemetry.EventMetadata{"plot": event.PlotIndex})
		case EventRain:
			e.record(telemetry.EventRainFell, nil)
		}
	}
	if won {
		e.record(telemetry.EventGameWon, telemetry.EventMetadata{"day": e.state.Day, "balance": e.state.Balance})
	}

	return DayReport{
		Day:    e.state.Day,
		Growth: growth,
		Event:  event,
		Won:    won,
		Done:   e.state.Done,
	}
}
