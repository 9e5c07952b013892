// hexapawn-tui plays hexapawn in the terminal against the matchbox catalogue.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/rivo/tview"

	"github.com/benbeisheim/hexapawn-backend/internal/config"
	"github.com/benbeisheim/hexapawn-backend/internal/model"
	"github.com/benbeisheim/hexapawn-backend/internal/tui"
)

const localPlayer = "local"

var (
	flagSeed   = flag.Int64("seed", 0, "random seed for catalogue move selection")
	flagManual = flag.Bool("manual", false, "move black yourself or with c / 1-9")
)

func main() {
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if *flagSeed != 0 {
		cfg.Game.RandomSeed = *flagSeed
	}
	if *flagManual {
		cfg.Game.ComputerOpponent = false
	}
	// the screen belongs to tview
	log.SetOutput(io.Discard)

	game := model.NewGame("local", model.GameOptions{
		Owner:            localPlayer,
		ComputerOpponent: cfg.Game.ComputerOpponent,
		Seed:             cfg.Game.RandomSeed,
	})

	app := tview.NewApplication()
	board := tui.NewBoardUI(app, game, localPlayer, cfg)
	app.SetInputCapture(board.HandleKey)

	if err := app.SetRoot(board.Root(), true).Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
