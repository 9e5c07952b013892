// service/game_manager.go
package service

import (
	"fmt"
	"sync"

	"github.com/benbeisheim/hexapawn-backend/internal/model"
	"github.com/benbeisheim/hexapawn-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type ManagerOptions struct {
	// ComputerOpponent is used when a game is created without saying otherwise.
	ComputerOpponent bool
	// Seed is handed to every new game; zero lets each game seed itself.
	Seed int64
}

type GameManager struct {
	games map[string]*model.Game
	opts  ManagerOptions
	mu    sync.RWMutex
}

func NewGameManager(opts ManagerOptions) *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
		opts:  opts,
	}
}

// CreateGame registers a new game owned by ownerID. A nil computerOpponent
// falls back to the manager default.
func (gm *GameManager) CreateGame(gameID, ownerID string, computerOpponent *bool) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return model.ErrGameExists
	}

	computer := gm.opts.ComputerOpponent
	if computerOpponent != nil {
		computer = *computerOpponent
	}
	gm.games[gameID] = model.NewGame(gameID, model.GameOptions{
		Owner:            ownerID,
		ComputerOpponent: computer,
		Seed:             gm.opts.Seed,
	})
	log.Infof("created game %s for player %s (computer opponent: %t)", gameID, ownerID, computer)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, gameID)
	}

	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.games, gameID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID, playerID string, move model.SimpleMove) (model.MoveResult, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.MoveInvalid, err
	}

	res, err := game.MakeMove(playerID, move.From, move.To)
	if err == nil && res != model.MoveInvalid {
		go game.BroadcastState()
	}
	return res, err
}

func (gm *GameManager) ComputerMove(gameID, playerID string, choice *int) (model.MoveResult, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.MoveInvalid, err
	}

	res, err := game.ComputerMove(playerID, choice)
	if err == nil {
		go game.BroadcastState()
	}
	return res, err
}

func (gm *GameManager) NewRound(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	if err := game.NewRound(playerID); err != nil {
		return err
	}
	go game.BroadcastState()
	return nil
}

func (gm *GameManager) ResetIntelligence(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	if err := game.ResetIntelligence(playerID); err != nil {
		return err
	}
	log.Infof("game %s: catalogue reset", gameID)
	go game.BroadcastState()
	return nil
}

func (gm *GameManager) Catalogue(gameID string) ([]model.BoxView, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	return game.Catalogue(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(playerID, conn)
}

func (gm *GameManager) Send(gameID string, conn *websocket.Conn, msg ws.Message) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.SendMessage(conn, msg)
}
