// Command farm runs the farming game interactively in the terminal. It is
// a thin input loop over the engine: it parses player commands, calls the
// matching operation, and prints the rendered outcome.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"farmstead/internal/config"
	"farmstead/internal/farm"
	"farmstead/internal/model"
	"farmstead/internal/render"
)

func main() {
	seed := flag.Int64("seed", 0, "fix the event randomness (0 = time-seeded)")
	flag.Parse()

	balance := config.FromEnv()
	catalog := model.DefaultCatalog()

	seeds := model.Inventory{}
	seeds.Add(model.Wheat, balance.StartingWheatSeeds)
	seeds.Add(model.Potato, balance.StartingPotatoSeeds)

	state := model.NewFarmState(balance.PlotCount, balance.StartingBalance, seeds)

	var rng farm.Rand
	if *seed != 0 {
		rng = farm.NewSeededRand(*seed)
	} else {
		rng = farm.NewRand()
	}

	engine := farm.NewEngine(
		state,
		catalog,
		farm.Rules{Goal: balance.Goal},
		farm.EventPolicy{PestBelow: balance.PestBelow, RainBelow: balance.RainBelow},
		rng,
	)

	game := &cli{
		engine:  engine,
		catalog: catalog,
		goal:    balance.Goal,
		in:      bufio.NewScanner(os.Stdin),
	}
	game.run()
}

type cli struct {
	engine  *farm.Engine
	catalog *model.Catalog
	goal    int
	in      *bufio.Scanner
}

func (c *cli) run() {
	fmt.Println("🌾 Welcome to Farmstead! 🌾")
	fmt.Printf("Your goal is to earn $%d by planting, watering, and harvesting crops.\n", c.goal)

	for {
		st := c.engine.State()
		if st.Done {
			break
		}

		fmt.Println()
		fmt.Println(render.Status(st, c.catalog, c.goal))
		fmt.Println()
		fmt.Println("What would you like to do?")
		fmt.Println("[P]lant a seed")
		fmt.Println("[W]ater a crop")
		fmt.Println("[H]arvest a crop")
		fmt.Println("[S]hop for seeds")
		fmt.Println("[I]nspect inventory")
		fmt.Println("[N]ext Day")
		fmt.Println("[Q]uit Game")

		switch c.prompt("> ") {
		case "p":
			c.plant()
		case "w":
			c.water()
		case "h":
			c.harvest()
		case "s":
			c.shop()
		case "i":
			fmt.Println(render.Inventory(c.engine.State(), c.catalog))
		case "n":
			rep := c.engine.AdvanceDay()
			fmt.Println(render.DayReport(rep, c.catalog))
		case "q":
			fmt.Println("Come back to the farm soon!")
			c.engine.Quit()
		case "":
			return // stdin closed
		default:
			fmt.Println("❓ Invalid command. Try again.")
		}
	}
}

// prompt reads one lowercased, trimmed line; returns "" on EOF.
func (c *cli) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text()))
}

func (c *cli) promptPlot(verb string) (int, bool) {
	raw := c.prompt(fmt.Sprintf("Which plot to %s? (1-%d) > ", verb, len(c.engine.State().Plots)))
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Println("❌ Please enter a valid number.")
		return 0, false
	}
	return n - 1, true
}

func (c *cli) plant() {
	fmt.Println(render.Inventory(c.engine.State(), c.catalog))
	crop := c.prompt("Which seed do you want to plant? (e.g., 'wheat') > ")
	if crop == "" {
		return
	}
	idx, ok := c.promptPlot("plant it in")
	if !ok {
		return
	}
	snap, err := c.engine.Plant(model.CropKind(crop), idx)
	if err != nil {
		fmt.Println(render.Failure(err))
		return
	}
	fmt.Printf("Planted %s in plot %d. Don't forget to water it!\n", snap.Plot.Crop, snap.Index+1)
}

func (c *cli) water() {
	idx, ok := c.promptPlot("water")
	if !ok {
		return
	}
	snap, err := c.engine.Water(idx)
	if err != nil {
		fmt.Println(render.Failure(err))
		return
	}
	fmt.Printf("💧 You watered plot %d. Your %s will grow tomorrow.\n", snap.Index+1, snap.Plot.Crop)
}

func (c *cli) harvest() {
	idx, ok := c.promptPlot("harvest")
	if !ok {
		return
	}
	res, err := c.engine.Harvest(idx)
	if err != nil {
		fmt.Println(render.Failure(err))
		return
	}
	fmt.Println(render.Harvest(res))
}

func (c *cli) shop() {
	fmt.Println()
	fmt.Println(render.Shop(c.catalog))

	for {
		choice := c.prompt("What would you like to buy? > ")
		if choice == "" || choice == "exit" {
			return
		}
		res, err := c.engine.BuySeed(model.CropKind(choice))
		if err != nil {
			fmt.Println(render.Failure(err))
			continue
		}
		fmt.Println(render.Purchase(res))
	}
}
