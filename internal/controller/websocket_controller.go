package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/hexapawn-backend/internal/model"
	"github.com/benbeisheim/hexapawn-backend/internal/service"
	"github.com/benbeisheim/hexapawn-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warnf("failed to register connection for game %s: %v", gameID, err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read error: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("game %s: parse error: %v", gameID, err)
			wsc.sendError(gameID, c, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: handle error: %v", gameID, err)
			wsc.sendError(gameID, c, err.Error())
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.SimpleMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		res, err := wsc.gameService.HandleMove(gameID, playerID, move)
		if err != nil {
			return err
		}
		if res == model.MoveInvalid {
			return fmt.Errorf("illegal move %s -> %s", move.From, move.To)
		}
		return nil

	case ws.MessageTypeComputerMove:
		var payload ws.ComputerMovePayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				return err
			}
		}
		_, err := wsc.gameService.HandleComputerMove(gameID, playerID, payload.Index)
		return err

	case ws.MessageTypeNewRound:
		return wsc.gameService.NewRound(gameID, playerID)

	case ws.MessageTypeResetIntelligence:
		return wsc.gameService.ResetIntelligence(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(gameID string, c *websocket.Conn, errorMsg string) {
	if err := wsc.gameService.SendError(gameID, c, errorMsg); err != nil {
		log.Debugf("game %s: failed to send error: %v", gameID, err)
	}
}
