package controller

import (
	"errors"

	"github.com/benbeisheim/hexapawn-backend/internal/model"
	"github.com/benbeisheim/hexapawn-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type CreateGameRequest struct {
	ComputerOpponent *bool `json:"computerOpponent"`
}

type ComputerMoveRequest struct {
	Index *int `json:"index"`
}

// errorStatus maps service errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrMoveIndex):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrGameOver),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrNoBox),
		errors.Is(err, model.ErrMoveDisabled):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals("playerID").(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(playerID(c), req.ComputerOpponent)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var move model.SimpleMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	res, err := gc.gameService.HandleMove(gameID, playerID(c), move)
	if err != nil {
		return respondError(c, err)
	}
	if res == model.MoveInvalid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "illegal move",
			"result": res,
		})
	}
	return gc.respondState(c, gameID, res)
}

func (gc *GameController) ComputerMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req ComputerMoveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	res, err := gc.gameService.HandleComputerMove(gameID, playerID(c), req.Index)
	if err != nil {
		return respondError(c, err)
	}
	return gc.respondState(c, gameID, res)
}

func (gc *GameController) NewRound(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if err := gc.gameService.NewRound(gameID, playerID(c)); err != nil {
		return respondError(c, err)
	}
	return gc.respondState(c, gameID, "")
}

func (gc *GameController) ResetIntelligence(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if err := gc.gameService.ResetIntelligence(gameID, playerID(c)); err != nil {
		return respondError(c, err)
	}
	return gc.respondState(c, gameID, "")
}

func (gc *GameController) GetCatalogue(c *fiber.Ctx) error {
	boxes, err := gc.gameService.GetCatalogue(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"boxes": boxes,
	})
}

func (gc *GameController) respondState(c *fiber.Ctx, gameID string, res model.MoveResult) error {
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return respondError(c, err)
	}
	body := fiber.Map{"state": state}
	if res != "" {
		body["result"] = res
	}
	return c.JSON(body)
}
