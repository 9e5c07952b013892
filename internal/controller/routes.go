package controller

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the game REST routes on api.
func RegisterRoutes(api fiber.Router, gc *GameController) {
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gc.CreateGame)
	gameRoutes.Get("/:gameId", gc.GetGameState)
	gameRoutes.Post("/:gameId/move", gc.MakeMove)
	gameRoutes.Post("/:gameId/computer-move", gc.ComputerMove)
	gameRoutes.Post("/:gameId/new-round", gc.NewRound)
	gameRoutes.Post("/:gameId/reset-intelligence", gc.ResetIntelligence)
	gameRoutes.Get("/:gameId/catalogue", gc.GetCatalogue)
}
