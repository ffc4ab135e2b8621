// Package render formats farm state and operation outcomes as terminal
// text. It is a read-only presentation layer: all game logic lives in the
// engine, and every function here works on snapshots.
package render

import (
	"fmt"
	"strings"

	"farmstead/internal/farm"
	"farmstead/internal/model"
)

const rule = "========================================"
const thinRule = "----------------------------------------"

// ProgressBar renders growth progress as the classic #/. bar.
func ProgressBar(progress, total int) string {
	if total < 0 {
		total = 0
	}
	if progress < 0 {
		progress = 0
	}
	if progress > total {
		progress = total
	}
	return strings.Repeat("#", progress) + strings.Repeat(".", total-progress)
}

// PlotLine renders one plot's status line. Index is shown 1-based, matching
// the numbers players type.
func PlotLine(idx int, plot model.Plot, catalog *model.Catalog) string {
	if plot.Empty() {
		return fmt.Sprintf("  [%d] Empty Land", idx+1)
	}
	def, ok := catalog.Get(plot.Crop)
	if !ok {
		return fmt.Sprintf("  [%d] %s (unknown crop)", idx+1, plot.Crop)
	}
	status := "Dry"
	if plot.Watered {
		status = "Watered"
	}
	name := title(string(plot.Crop))
	if plot.Growth >= def.GrowthDays {
		return fmt.Sprintf("  [%d] %s %s [READY] %s", idx+1, def.Icon, name, status)
	}
	return fmt.Sprintf("  [%d] %s %s [%s] %s", idx+1, def.Icon, name, ProgressBar(plot.Growth, def.GrowthDays), status)
}

// Status renders the full farm status banner.
func Status(st *model.FarmState, catalog *model.Catalog, goal int) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "☀️  Day: %d  | 💰 Money: $%d\n", st.Day, st.Balance)
	fmt.Fprintf(&b, "🎯 Goal: Reach $%d\n", goal)
	b.WriteString(thinRule + "\n")
	b.WriteString("🌱 Your Farm Plots:\n")
	for i, plot := range st.Plots {
		b.WriteString(PlotLine(i, plot, catalog) + "\n")
	}
	b.WriteString(rule)
	return b.String()
}

// Inventory renders the seed inventory listing.
func Inventory(st *model.FarmState, catalog *model.Catalog) string {
	var b strings.Builder
	b.WriteString("📦 Your Inventory:\n")
	if len(st.Inventory) == 0 {
		b.WriteString("  - Empty\n")
	} else {
		// Catalog order keeps the listing stable across turns.
		for _, kind := range catalog.Kinds() {
			if n := st.Inventory.Count(kind); n > 0 {
				fmt.Fprintf(&b, "  - %dx %s Seeds\n", n, title(string(kind)))
			}
		}
	}
	b.WriteString(thinRule)
	return b.String()
}

// Shop renders the market listing with per-seed prices.
func Shop(catalog *model.Catalog) string {
	var b strings.Builder
	b.WriteString("🏪 Welcome to the Farmer's Market!\n")
	b.WriteString("Here's what's for sale (per seed):\n")
	for _, kind := range catalog.Kinds() {
		def, _ := catalog.Get(kind)
		fmt.Fprintf(&b, "  - %s Seeds: $%d (%s)\n", title(string(kind)), def.SeedPrice, def.Info)
	}
	b.WriteString("\nType 'exit' to leave the shop.")
	return b.String()
}

// DayReport renders the outcome lines of a day tick.
func DayReport(rep farm.DayReport, catalog *model.Catalog) string {
	var b strings.Builder
	b.WriteString("🌅 A new day dawns...\n")
	for _, g := range rep.Growth {
		if g.Grew {
			fmt.Fprintf(&b, "  - Your %s grew a little!\n", g.Crop)
		} else if !g.Ready {
			fmt.Fprintf(&b, "  - Your %s didn't grow. It needs water!\n", g.Crop)
		}
	}
	if rep.Event != nil {
		switch rep.Event.Kind {
		case farm.EventPest:
			b.WriteString("  - 🐛 A swarm of pests attacked! Some crops may be damaged.\n")
			if rep.Event.PlotIndex >= 0 {
				fmt.Fprintf(&b, "  - Your %s in plot %d was set back a day!\n", rep.Event.Crop, rep.Event.PlotIndex+1)
			}
		case farm.EventRain:
			b.WriteString("  - 🌧️ Gentle rains fell overnight! All your plots have been watered.\n")
		}
	}
	if rep.Won {
		b.WriteString("\n🎉 CONGRATULATIONS! You've built a successful farm! 🎉\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Harvest renders a harvest confirmation.
func Harvest(res farm.HarvestResult) string {
	return fmt.Sprintf("✅ You harvested the %s and sold it for $%d!", res.Crop, res.Earned)
}

// Purchase renders a seed purchase confirmation.
func Purchase(res farm.PurchaseResult) string {
	return fmt.Sprintf("You bought 1 %s seed. You have $%d left.", res.Crop, res.NewBalance)
}

// Failure renders an engine error as a user-facing message.
func Failure(err error) string {
	return "❌ " + title(err.Error()) + "."
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
