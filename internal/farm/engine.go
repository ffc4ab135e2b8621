package farm

import (
	"farmstead/internal/model"
	"farmstead/internal/telemetry"
)

// Rules holds the win condition for a farm session.
type Rules struct {
	Goal int
}

// DefaultRules returns the stock win threshold.
func DefaultRules() Rules {
	return Rules{Goal: 500}
}

// Engine is the farm state machine. It owns exactly one FarmState and is
// the only writer to it; every operation validates its preconditions in
// full before committing any mutation. The engine performs no I/O.
type Engine struct {
	state   *model.FarmState
	catalog *model.Catalog
	rules   Rules
	events  EventPolicy
	rng     Rand
	tel     telemetry.Repository
}

// NewEngine wraps a farm state with its catalog, rules, event policy, and
// randomness source.
func NewEngine(state *model.FarmState, catalog *model.Catalog, rules Rules, events EventPolicy, rng Rand) *Engine {
	return &Engine{
		state:   state,
		catalog: catalog,
		rules:   rules,
		events:  events,
		rng:     rng,
	}
}

// SetTelemetry attaches an event recorder. Telemetry is best-effort; record
// failures never affect game state.
func (e *Engine) SetTelemetry(repo telemetry.Repository) { e.tel = repo }

// State returns a deep read-only snapshot of the farm.
func (e *Engine) State() *model.FarmState { return e.state.Clone() }

// Catalog returns the crop lookup table.
func (e *Engine) Catalog() *model.Catalog { return e.catalog }

// Rules returns the session rules.
func (e *Engine) Rules() Rules { return e.rules }

// commit marks one completed mutation on the state.
func (e *Engine) commit() { e.state.Revision++ }

func (e *Engine) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if e.tel == nil {
		return
	}
	_ = e.tel.RecordEvent(t, meta)
}

// PlotSnapshot is the post-operation view of a single plot.
type PlotSnapshot struct {
	Index int        `json:"index"`
	Plot  model.Plot `json:"plot"`
}

// Plant sows one seed of the given crop into the target plot. Preconditions
// in order: seed held, index in range, plot empty.
func (e *Engine) Plant(kind model.CropKind, idx int) (PlotSnapshot, error) {
	if e.state.Inventory.Count(kind) < 1 {
		return PlotSnapshot{}, ErrInsufficientInventory
	}
	if idx < 0 || idx >= len(e.state.Plots) {
		return PlotSnapshot{}, ErrInvalidPlotIndex
	}
	if e.state.Plots[idx].Occupied() {
		return PlotSnapshot{}, ErrPlotOccupied
	}

	e.state.Inventory.Remove(kind, 1)
	e.state.Plots[idx] = model.Plot{Crop: kind, Growth: 0, Watered: false}
	e.commit()

	e.record(telemetry.EventCropPlanted, telemetry.EventMetadata{"crop": string(kind), "plot": idx})
	return PlotSnapshot{Index: idx, Plot: e.state.Plots[idx]}, nil
}

// Water marks the target plot as watered for the current day. Watering an
// already-watered plot is a no-op success.
func (e *Engine) Water(idx int) (PlotSnapshot, error) {
	if idx < 0 || idx >= len(e.state.Plots) {
		return PlotSnapshot{}, ErrInvalidPlotIndex
	}
	if e.state.Plots[idx].Empty() {
		return PlotSnapshot{}, ErrEmptyPlot
	}

	if !e.state.Plots[idx].Watered {
		e.state.Plots[idx].Watered = true
		e.commit()
	}
	return PlotSnapshot{Index: idx, Plot: e.state.Plots[idx]}, nil
}

// HarvestResult reports a completed harvest.
type HarvestResult struct {
	Crop       model.CropKind `json:"crop"`
	Earned     int            `json:"earned"`
	NewBalance int            `json:"newBalance"`
}

// Harvest sells the crop in the target plot and returns it to empty land.
// The plot must be ready: growth equal to the crop's growth duration.
func (e *Engine) Harvest(idx int) (HarvestResult, error) {
	if idx < 0 || idx >= len(e.state.Plots) {
		return HarvestResult{}, ErrInvalidPlotIndex
	}
	plot := e.state.Plots[idx]
	if plot.Empty() {
		return HarvestResult{}, ErrEmptyPlot
	}
	def, ok := e.catalog.Get(plot.Crop)
	if !ok {
		return HarvestResult{}, ErrUnknownCrop
	}
	if plot.Growth < def.GrowthDays {
		return HarvestResult{}, ErrNotReady
	}

	e.state.Balance += def.SellPrice
	e.state.Plots[idx] = model.Plot{}
	e.commit()

	e.record(telemetry.EventCropHarvested, telemetry.EventMetadata{
		"crop":   string(plot.Crop),
		"plot":   idx,
		"earned": def.SellPrice,
	})
	return HarvestResult{Crop: plot.Crop, Earned: def.SellPrice, NewBalance: e.state.Balance}, nil
}

// PurchaseResult reports a completed seed purchase.
type PurchaseResult struct {
	Crop       model.CropKind `json:"crop"`
	Price      int            `json:"price"`
	NewBalance int            `json:"newBalance"`
	SeedCount  int            `json:"seedCount"`
}

// BuySeed purchases one seed of the given crop from the market.
func (e *Engine) BuySeed(kind model.CropKind) (PurchaseResult, error) {
	def, ok := e.catalog.Get(kind)
	if !ok {
		return PurchaseResult{}, ErrUnknownCrop
	}
	if e.state.Balance < def.SeedPrice {
		return PurchaseResult{}, ErrInsufficientFunds
	}

	e.state.Balance -= def.SeedPrice
	e.state.Inventory.Add(kind, 1)
	e.commit()

	e.record(telemetry.EventSeedPurchased, telemetry.EventMetadata{
		"crop":  string(kind),
		"price": def.SeedPrice,
	})
	return PurchaseResult{
		Crop:       kind,
		Price:      def.SeedPrice,
		NewBalance: e.state.Balance,
		SeedCount:  e.state.Inventory.Count(kind),
	}, nil
}

// Quit ends the session without a win.
func (e *Engine) Quit() {
	if e.state.Done {
		return
	}
	e.state.Done = true
	e.commit()
}
