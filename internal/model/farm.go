package model

// Plot is one addressable unit of farmland. A plot with an empty Crop is
// empty land; Growth and Watered are only meaningful while occupied.
type Plot struct {
	Crop    CropKind `json:"crop,omitempty"`
	Growth  int      `json:"growth"`
	Watered bool     `json:"watered"`
}

// Empty reports whether nothing is planted in the plot.
func (p Plot) Empty() bool { return p.Crop == "" }

// Occupied reports whether a crop is growing in the plot.
func (p Plot) Occupied() bool { return p.Crop != "" }

// Inventory maps crop kinds to held seed counts. A missing key means zero;
// entries never persist at zero.
type Inventory map[CropKind]int

// Add increases the seed count for a crop kind.
func (inv Inventory) Add(kind CropKind, n int) {
	if n <= 0 {
		return
	}
	inv[kind] += n
}

// Remove decreases the seed count, deleting the entry when it reaches zero.
// Returns false without mutating if the inventory holds fewer than n.
func (inv Inventory) Remove(kind CropKind, n int) bool {
	if n <= 0 {
		return true
	}
	have := inv[kind]
	if have < n {
		return false
	}
	if have == n {
		delete(inv, kind)
		return true
	}
	inv[kind] = have - n
	return true
}

// Count returns the held seed count for a crop kind.
func (inv Inventory) Count(kind CropKind) int { return inv[kind] }

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

// FarmState holds the complete mutable state of one farm session. It is
// owned by exactly one engine; Revision increments on every committed
// mutation and backs optimistic conflict checks at the API layer.
type FarmState struct {
	Day       int       `json:"day"`
	Balance   int       `json:"balance"`
	Plots     []Plot    `json:"plots"`
	Inventory Inventory `json:"inventory"`
	Done      bool      `json:"done"`
	Revision  int       `json:"revision"`
}

// NewFarmState creates a fresh farm on day 1 with the given plot count,
// starting balance, and starting seeds.
func NewFarmState(plotCount, balance int, seeds Inventory) *FarmState {
	if plotCount < 1 {
		plotCount = 1
	}
	if balance < 0 {
		balance = 0
	}
	inv := make(Inventory, len(seeds))
	for k, v := range seeds {
		if v > 0 {
			inv[k] = v
		}
	}
	return &FarmState{
		Day:       1,
		Balance:   balance,
		Plots:     make([]Plot, plotCount),
		Inventory: inv,
	}
}

// Clone returns a deep snapshot of the farm state.
func (s *FarmState) Clone() *FarmState {
	out := *s
	out.Plots = make([]Plot, len(s.Plots))
	copy(out.Plots, s.Plots)
	out.Inventory = s.Inventory.Clone()
	return &out
}
