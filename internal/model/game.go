package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/benbeisheim/hexapawn-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // a websocket connection allows one writer at a time
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

type GameStatus string

const (
	StatusOngoing  GameStatus = "ongoing"
	StatusWhiteWon GameStatus = "white_won"
	StatusBlackWon GameStatus = "black_won"
)

type Tally struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// MoveRecord is one applied move. Box and move are set when the move came
// from a catalogue box; those are the moves learning can blame.
type MoveRecord struct {
	Turn   int            `json:"turn"`
	Color  PlayerColor    `json:"color"`
	From   Position       `json:"from"`
	To     Position       `json:"to"`
	Result MoveResult     `json:"result"`
	BoxID  string         `json:"boxId,omitempty"`
	Tag    MoveTag        `json:"tag,omitempty"`
	box    *Box
	move   *CandidateMove
}

type CandidateMoveView struct {
	Index    int      `json:"index"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Movement Movement `json:"movement"`
	Tag      MoveTag  `json:"tag"`
	Disabled bool     `json:"disabled"`
}

type BoxView struct {
	ID     string              `json:"id"`
	Turn   int                 `json:"turn"`
	Layout []string            `json:"layout"`
	Moves  []CandidateMoveView `json:"moves"`
}

func NewBoxView(box *Box) BoxView {
	view := BoxView{
		ID:     box.ID,
		Turn:   box.Turn,
		Layout: box.Layout(),
		Moves:  make([]CandidateMoveView, len(box.Moves)),
	}
	for i, m := range box.Moves {
		dest, _ := m.Destination()
		view.Moves[i] = CandidateMoveView{
			Index:    i,
			From:     m.Origin,
			To:       dest,
			Movement: m.Movement,
			Tag:      m.Tag,
			Disabled: m.Disabled(),
		}
	}
	return view
}

type LearnedMove struct {
	BoxID string            `json:"boxId"`
	Turn  int               `json:"turn"`
	Move  CandidateMoveView `json:"move"`
}

type GameState struct {
	Layout      []string     `json:"layout"`
	Board       [][]*Piece   `json:"board"`
	Turn        int          `json:"turn"`
	ToMove      PlayerColor  `json:"toMove"`
	Status      GameStatus   `json:"status"`
	Winner      *PlayerColor `json:"winner"` // nil while ongoing
	Resigned    bool         `json:"resigned"`
	LastResult  MoveResult   `json:"lastResult"`
	MoveHistory []MoveRecord `json:"moveHistory"`
	LegalMoves  []SimpleMove `json:"legalMoves"`
	Box         *BoxView     `json:"box"` // catalogue entry for black's current turn, if any
	Tally       Tally        `json:"tally"`
	LastLearned *LearnedMove `json:"lastLearned"`
	Disabled    int          `json:"disabledMoves"`
	Players     struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

type GameOptions struct {
	Owner            string
	ComputerOpponent bool
	// Seed feeds the random choice among enabled moves; zero picks a time based seed.
	Seed      int64
	Catalogue *Catalogue
}

// Game is one player's series of rounds against the catalogue. Its catalogue
// lives across rounds so eliminated moves stay eliminated.
type Game struct {
	ID          string
	mu          sync.Mutex
	owner       string
	computer    bool
	board       *Board
	catalogue   *Catalogue
	rng         *rand.Rand
	turn        int
	toMove      PlayerColor
	winner      PlayerColor
	resigned    bool
	lastResult  MoveResult
	history     []MoveRecord
	tally       Tally
	lastLearned *LearnedMove
	connections *GameConnections
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewGame(id string, opts GameOptions) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	catalogue := opts.Catalogue
	if catalogue == nil {
		catalogue = DefaultCatalogue()
	}
	g := &Game{
		ID:          id,
		owner:       opts.Owner,
		computer:    opts.ComputerOpponent,
		board:       NewBoard(),
		catalogue:   catalogue,
		rng:         rand.New(rand.NewSource(seed)),
		connections: NewGameConnections(),
		CreatedAt:   time.Now(),
	}
	g.resetRound()
	return g
}

func (g *Game) resetRound() {
	g.board.ResetPawns()
	g.turn = 1
	g.toMove = PlayerColorWhite
	g.winner = ""
	g.resigned = false
	g.lastResult = ""
	g.history = nil
	g.UpdatedAt = time.Now()
}

func (g *Game) authorize(playerID string) error {
	if playerID == "" || playerID != g.owner {
		return ErrNotAuthorized
	}
	return nil
}

func (g *Game) ended() bool {
	return g.winner != ""
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return playerID != "" && playerID == g.owner
}

// MakeMove moves the owner's pawn on from to to. Illegal moves, including
// clicks on empty or opposing tiles, come back as MoveInvalid with no error and
// leave the game untouched. With a computer opponent, black answers straight
// away when the catalogue knows the position and the result of that reply is
// returned instead.
func (g *Game) MakeMove(playerID string, from, to Position) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(playerID); err != nil {
		return MoveInvalid, err
	}
	if g.computer && g.toMove == LearningSide && !g.ended() {
		if _, ok := g.catalogue.MatchFor(g.turn, g.board); ok {
			return MoveInvalid, ErrNotYourTurn
		}
	}
	res, err := g.makeMove(from, to)
	if err != nil || res == MoveInvalid {
		return res, err
	}
	if g.computer && !g.ended() && g.toMove == LearningSide {
		reply, err := g.computerMove(nil)
		if err == nil {
			return reply, nil
		}
		if !errors.Is(err, ErrNoBox) {
			log.Errorf("game %s: computer move failed: %v", g.ID, err)
		}
	}
	return res, nil
}

func (g *Game) makeMove(from, to Position) (MoveResult, error) {
	if g.ended() {
		return MoveInvalid, ErrGameOver
	}
	piece := g.board.PieceAt(from)
	if piece == nil || piece.Color != g.toMove {
		return MoveInvalid, nil
	}
	// A manual black move that matches a box is still the catalogue's move.
	var box *Box
	var move *CandidateMove
	if g.toMove == LearningSide {
		if b, ok := g.catalogue.MatchFor(g.turn, g.board); ok {
			if m, ok := b.MoveTo(from, to); ok {
				box, move = b, m
			}
		}
	}
	res := g.board.ApplyMove(piece, to)
	if res == MoveInvalid {
		return res, nil
	}
	g.record(from, to, res, box, move)
	g.advance(res)
	return res, nil
}

// ComputerMove plays black from the catalogue. choice selects a candidate by
// index; nil picks one of the enabled moves at random. ErrNoBox means the
// position is not catalogued and black has to be moved by hand.
func (g *Game) ComputerMove(playerID string, choice *int) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(playerID); err != nil {
		return MoveInvalid, err
	}
	return g.computerMove(choice)
}

func (g *Game) computerMove(choice *int) (MoveResult, error) {
	if g.ended() {
		return MoveInvalid, ErrGameOver
	}
	if g.toMove != LearningSide {
		return MoveInvalid, ErrNotYourTurn
	}
	box, ok := g.catalogue.MatchFor(g.turn, g.board)
	if !ok {
		return MoveInvalid, fmt.Errorf("%w: turn %d %v", ErrNoBox, g.turn, g.board.Layout())
	}
	enabled := box.EnabledMoves()
	if len(enabled) == 0 {
		log.Infof("game %s: box %s is empty, black resigns", g.ID, box.ID)
		g.resigned = true
		res := winFor(LearningSide.Opponent())
		g.advance(res)
		return res, nil
	}

	var move *CandidateMove
	if choice != nil {
		if *choice < 0 || *choice >= len(box.Moves) {
			return MoveInvalid, fmt.Errorf("%w: %d of %d in box %s", ErrMoveIndex, *choice, len(box.Moves), box.ID)
		}
		move = box.Moves[*choice]
		if move.Disabled() {
			return MoveInvalid, fmt.Errorf("%w: %s in box %s", ErrMoveDisabled, move, box.ID)
		}
	} else {
		move = enabled[g.rng.Intn(len(enabled))]
	}

	dest, _ := move.Destination()
	res := g.board.ApplyMove(g.board.PieceAt(move.Origin), dest)
	if res == MoveInvalid {
		return res, fmt.Errorf("box %s: move %s does not apply to the live board", box.ID, move)
	}
	log.Debugf("game %s: turn %d box %s plays %s (%s)", g.ID, g.turn, box.ID, move, move.Tag)
	g.record(move.Origin, dest, res, box, move)
	g.advance(res)
	return res, nil
}

func (g *Game) record(from, to Position, res MoveResult, box *Box, move *CandidateMove) {
	rec := MoveRecord{
		Turn:   g.turn,
		Color:  g.toMove,
		From:   from,
		To:     to,
		Result: res,
		box:    box,
		move:   move,
	}
	if box != nil {
		rec.BoxID = box.ID
		rec.Tag = move.Tag
	}
	g.history = append(g.history, rec)
}

func (g *Game) advance(res MoveResult) {
	g.lastResult = res
	g.UpdatedAt = time.Now()
	if winner, ok := res.Winner(); ok {
		g.winner = winner
		if winner == PlayerColorWhite {
			g.tally.White++
		} else {
			g.tally.Black++
		}
		if winner != LearningSide {
			g.learn()
		}
		return
	}
	g.toMove = g.toMove.Opponent()
	g.turn++
}

// learn blames the loss on the most recent catalogue move of this round that
// is still enabled and disables it.
func (g *Game) learn() {
	for i := len(g.history) - 1; i >= 0; i-- {
		rec := g.history[i]
		if rec.move == nil || rec.move.Disabled() {
			continue
		}
		if err := g.catalogue.DisableMove(rec.box, rec.move); err != nil {
			log.Errorf("game %s: disabling %s in box %s: %v", g.ID, rec.move, rec.box.ID, err)
			return
		}
		idx := slices.Index(rec.box.Moves, rec.move)
		view := NewBoxView(rec.box)
		g.lastLearned = &LearnedMove{BoxID: rec.box.ID, Turn: rec.Turn, Move: view.Moves[idx]}
		log.Infof("game %s: disabled %s (%s) in box %s", g.ID, rec.move, rec.move.Tag, rec.box.ID)
		return
	}
	log.Debugf("game %s: black lost without a move left to blame", g.ID)
}

// NewRound resets the board for another round. Learned eliminations are kept.
func (g *Game) NewRound(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(playerID); err != nil {
		return err
	}
	g.resetRound()
	return nil
}

// ResetIntelligence re-enables every move of the game's catalogue.
func (g *Game) ResetIntelligence(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(playerID); err != nil {
		return err
	}
	g.catalogue.ResetAll()
	g.lastLearned = nil
	g.UpdatedAt = time.Now()
	return nil
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	s := GameState{
		Layout:      g.board.Layout(),
		Board:       g.board.TileGrid(),
		Turn:        g.turn,
		ToMove:      g.toMove,
		Status:      StatusOngoing,
		Resigned:    g.resigned,
		LastResult:  g.lastResult,
		MoveHistory: make([]MoveRecord, len(g.history)),
		LegalMoves:  make([]SimpleMove, 0),
		Tally:       g.tally,
		LastLearned: g.lastLearned,
		Disabled:    g.catalogue.DisabledCount(),
	}
	copy(s.MoveHistory, g.history)
	s.Players.White = ClientPlayer{ID: g.owner, Color: PlayerColorWhite}
	s.Players.Black = ClientPlayer{ID: g.owner, Color: PlayerColorBlack, Computer: g.computer}
	if g.computer {
		s.Players.Black.ID = ""
	}
	if g.ended() {
		winner := g.winner
		s.Winner = &winner
		s.Status = StatusWhiteWon
		if winner == PlayerColorBlack {
			s.Status = StatusBlackWon
		}
		return s
	}
	s.LegalMoves = append(s.LegalMoves, g.board.LegalMoves(g.toMove)...)
	if g.toMove == LearningSide {
		if box, ok := g.catalogue.MatchFor(g.turn, g.board); ok {
			view := NewBoxView(box)
			s.Box = &view
		}
	}
	return s
}

// Catalogue lists every box of the game's catalogue with its disabled flags.
func (g *Game) Catalogue() []BoxView {
	g.mu.Lock()
	defer g.mu.Unlock()

	boxes := g.catalogue.Boxes()
	out := make([]BoxView, len(boxes))
	for i, box := range boxes {
		out[i] = NewBoxView(box)
	}
	return out
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	connID := fmt.Sprintf("%p", conn)
	log.Debugf("registering connection %s for player %s in game %s", connID, playerID, g.ID)

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// keep the healthy connection, reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.BroadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	// only drop the entry if it is still this connection
	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		log.Debugf("unregistering connection %p for player %s in game %s", conn, playerID, g.ID)
		delete(g.connections.connections, playerID)
	}
}

// BroadcastState pushes the current state to every connection of the game.
func (g *Game) BroadcastState() {
	payload, err := json.Marshal(g.GetState())
	if err != nil {
		log.Errorf("game %s: marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}
	for playerID, conn := range active {
		if err := g.SendMessage(conn, msg); err != nil {
			log.Warnf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			g.UnregisterConnection(playerID, conn)
		}
	}
}

// SendMessage writes msg to one of the game's connections.
func (g *Game) SendMessage(conn *websocket.Conn, msg ws.Message) error {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()

	return conn.WriteJSON(msg)
}
