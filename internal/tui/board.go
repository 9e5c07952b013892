// Package tui draws a hexapawn game in the terminal and drives it from the keyboard.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/benbeisheim/hexapawn-backend/internal/config"
	"github.com/benbeisheim/hexapawn-backend/internal/model"
)

var tagColors = map[model.MoveTag]string{
	model.TagGreen:  "green",
	model.TagRed:    "red",
	model.TagBlue:   "blue",
	model.TagYellow: "yellow",
}

type BoardUI struct {
	app      *tview.Application
	root     *tview.Flex
	table    *tview.Table
	info     *tview.TextView
	game     *model.Game
	player   string
	symbols  config.ConfigSymbols
	selected *model.Position
	message  string
}

func NewBoardUI(app *tview.Application, game *model.Game, player string, cfg *config.Config) *BoardUI {
	b := &BoardUI{
		app:     app,
		table:   tview.NewTable(),
		info:    tview.NewTextView(),
		game:    game,
		player:  player,
		symbols: cfg.Symbols,
	}

	b.table.SetBorders(true)
	b.table.SetSelectable(true, true)
	b.table.SetBorder(true).SetTitle(" Board ")
	b.table.SetSelectedFunc(func(row, col int) {
		b.selectTile(row, col)
		b.refresh()
	})

	b.info.SetDynamicColors(true)
	b.info.SetBorder(true)
	b.info.SetBorderPadding(0, 0, 1, 1)
	b.info.SetTitle(" Status ")
	b.info.SetTitleAlign(tview.AlignLeft)

	b.root = tview.NewFlex().
		AddItem(b.table, 4*model.Size+3, 0, true).
		AddItem(b.info, 0, 1, false)

	b.refresh()
	return b
}

func (b *BoardUI) Root() tview.Primitive {
	return b.root
}

// HandleKey is installed as the application's input capture.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}
	switch r := event.Rune(); {
	case r == 'q':
		b.app.Stop()
	case r == 'c':
		b.computerMove(nil)
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		b.computerMove(&idx)
	case r == 'n':
		b.report(b.game.NewRound(b.player))
		b.selected = nil
	case r == 'r':
		b.report(b.game.ResetIntelligence(b.player))
		if b.message == "" {
			b.message = "catalogue reset"
		}
	default:
		return event
	}
	b.refresh()
	return nil
}

func (b *BoardUI) report(err error) {
	b.message = ""
	if err != nil {
		b.message = err.Error()
	}
}

func (b *BoardUI) computerMove(choice *int) {
	_, err := b.game.ComputerMove(b.player, choice)
	if errors.Is(err, model.ErrNoBox) {
		b.message = "position not in catalogue, move black by hand"
		return
	}
	b.report(err)
}

func (b *BoardUI) selectTile(row, col int) {
	state := b.game.GetState()
	if state.Status != model.StatusOngoing {
		b.message = "round over, press n for a new one"
		return
	}
	pos := model.Position{Row: row, Col: col}
	piece := state.Board[row][col]
	own := piece != nil && piece.Color == state.ToMove

	switch {
	case b.selected == nil:
		if own {
			b.selected = &pos
		}
	case *b.selected == pos:
		b.selected = nil
	case own:
		b.selected = &pos
	default:
		res, err := b.game.MakeMove(b.player, *b.selected, pos)
		b.report(err)
		if err == nil && res == model.MoveInvalid {
			b.message = "illegal move"
		}
		if err == nil && res != model.MoveInvalid {
			b.selected = nil
		}
	}
}

func (b *BoardUI) symbol(p *model.Piece) string {
	switch {
	case p == nil:
		return string(b.symbols.Empty)
	case p.Color == model.PlayerColorWhite:
		return string(b.symbols.WhitePawn)
	}
	return string(b.symbols.BlackPawn)
}

func (b *BoardUI) refresh() {
	state := b.game.GetState()

	for row := range state.Board {
		for col, p := range state.Board[row] {
			cell := tview.NewTableCell(" " + b.symbol(p) + " ").
				SetAlign(tview.AlignCenter).
				SetExpansion(1)
			if p != nil && p.Color == model.PlayerColorBlack {
				cell.SetTextColor(tcell.ColorOrange)
			}
			if b.selected != nil && b.selected.Row == row && b.selected.Col == col {
				cell.SetBackgroundColor(tcell.ColorDarkGreen)
			}
			b.table.SetCell(row, col, cell)
		}
	}

	b.info.SetText(b.statusText(state))
}

func (b *BoardUI) statusText(state model.GameState) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[white::b]Turn %d[-:-:-]\n", state.Turn)
	switch state.Status {
	case model.StatusOngoing:
		fmt.Fprintf(&sb, "%s to move\n", state.ToMove)
	default:
		fmt.Fprintf(&sb, "[yellow]%s wins[-]", *state.Winner)
		if state.Resigned {
			sb.WriteString(" (black resigned)")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "White %d : %d Black\n", state.Tally.White, state.Tally.Black)
	fmt.Fprintf(&sb, "Disabled moves: %d\n\n", state.Disabled)

	if state.Box != nil {
		fmt.Fprintf(&sb, "[white::b]Box %s[-:-:-]\n", state.Box.ID)
		for _, m := range state.Box.Moves {
			color := tagColors[m.Tag]
			if m.Disabled {
				color = "gray"
			}
			fmt.Fprintf(&sb, "[%s]%d. %s %s -> %s[-]\n", color, m.Index+1, m.Tag, m.From, m.To)
		}
		sb.WriteString("\n")
	}
	if state.LastLearned != nil {
		fmt.Fprintf(&sb, "Learned: box %s dropped %s %s\n\n",
			state.LastLearned.BoxID, state.LastLearned.Move.Tag, state.LastLearned.Move.From)
	}
	if b.message != "" {
		fmt.Fprintf(&sb, "[red]%s[-]\n\n", tview.Escape(b.message))
	}
	sb.WriteString("[gray]enter select/move  c computer  1-9 pick move\nn new round  r reset catalogue  q quit[-]")
	return sb.String()
}
