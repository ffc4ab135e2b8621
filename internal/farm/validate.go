package farm

import "errors"

// Every operation failure is expected and recoverable; the presentation
// layer turns these into user messages. Validation fully precedes mutation,
// so a failed operation never leaves partial writes behind.
var (
	ErrInvalidPlotIndex      = errors.New("plot index out of range")
	ErrPlotOccupied          = errors.New("plot is already occupied")
	ErrEmptyPlot             = errors.New("plot is empty")
	ErrNotReady              = errors.New("crop is not ready to harvest")
	ErrInsufficientInventory = errors.New("no seeds of that crop in inventory")
	ErrInsufficientFunds     = errors.New("not enough money")
	ErrUnknownCrop           = errors.New("unknown crop")
	ErrGameOver              = errors.New("game is over")
)

// ErrorCode maps an engine failure to its wire code. Returns "" for errors
// outside the taxonomy.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPlotIndex):
		return "invalid_plot_index"
	case errors.Is(err, ErrPlotOccupied):
		return "plot_occupied"
	case errors.Is(err, ErrEmptyPlot):
		return "empty_plot"
	case errors.Is(err, ErrNotReady):
		return "not_ready"
	case errors.Is(err, ErrInsufficientInventory):
		return "insufficient_inventory"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrUnknownCrop):
		return "unknown_crop"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	default:
		return ""
	}
}
