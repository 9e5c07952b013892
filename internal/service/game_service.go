package service

import (
	"fmt"

	"github.com/benbeisheim/hexapawn-backend/internal/model"
	"github.com/benbeisheim/hexapawn-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(playerID string, computerOpponent *bool) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, playerID, computerOpponent); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// HandleMove applies a player move. Off-board or otherwise illegal moves come
// back as model.MoveInvalid with a nil error.
func (gs *GameService) HandleMove(gameID string, playerID string, move model.SimpleMove) (model.MoveResult, error) {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) HandleComputerMove(gameID string, playerID string, choice *int) (model.MoveResult, error) {
	return gs.gameManager.ComputerMove(gameID, playerID, choice)
}

func (gs *GameService) NewRound(gameID string, playerID string) error {
	return gs.gameManager.NewRound(gameID, playerID)
}

func (gs *GameService) ResetIntelligence(gameID string, playerID string) error {
	return gs.gameManager.ResetIntelligence(gameID, playerID)
}

func (gs *GameService) GetCatalogue(gameID string) ([]model.BoxView, error) {
	return gs.gameManager.Catalogue(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) SendError(gameID string, conn *websocket.Conn, errorMsg string) error {
	return gs.gameManager.Send(gameID, conn, ws.NewError(errorMsg))
}
