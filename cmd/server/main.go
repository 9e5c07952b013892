package main

import (
	"flag"
	"os"
	"strings"

	"github.com/benbeisheim/hexapawn-backend/internal/config"
	"github.com/benbeisheim/hexapawn-backend/internal/controller"
	"github.com/benbeisheim/hexapawn-backend/internal/middleware"
	"github.com/benbeisheim/hexapawn-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
)

var (
	flagAddr     = flag.String("addr", "", "listen address (overrides config)")
	flagOrigins  = flag.String("origins", "", "allowed CORS origins (overrides config)")
	flagSeed     = flag.Int64("seed", 0, "random seed for catalogue move selection (overrides config)")
	flagLogLevel = flag.String("log-level", "", "trace, debug, info, warn or error (overrides config)")
	flagManual   = flag.Bool("manual", false, "do not let the catalogue answer white moves automatically")
	flagWrite    = flag.Bool("write-config", false, "save the effective config to the user config directory and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *flagWrite {
		if err := cfg.Save(); err != nil {
			log.Fatal(err)
		}
		log.Info("config saved")
		return
	}
	level, _ := cfg.Level()
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	app := NewApp(cfg)

	log.Infof("listening on %s", cfg.Server.Addr)
	log.Fatal(app.Listen(cfg.Server.Addr))
}

func applyFlags(cfg *config.Config) {
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagOrigins != "" {
		cfg.Server.AllowOrigins = *flagOrigins
	}
	if *flagSeed != 0 {
		cfg.Game.RandomSeed = *flagSeed
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
	}
	if *flagManual {
		cfg.Game.ComputerOpponent = false
	}
}

// NewApp wires services, controllers and routes.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: cfg.Server.AllowOrigins != "*",
	}))

	// Initialize services
	gameManager := service.NewGameManager(service.ManagerOptions{
		ComputerOpponent: cfg.Game.ComputerOpponent,
		Seed:             cfg.Game.RandomSeed,
	})
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		log.Debugf("websocket connection established for game %s", c.Params("gameId"))
		wsController.HandleConnection(c)
	}, websocket.Config{
		Origins:         splitOrigins(cfg.Server.AllowOrigins),
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	controller.RegisterRoutes(app.Group("/api", middleware.EnsurePlayerID()), gameController)

	return app
}

// splitOrigins turns the CORS origin list into the websocket upgrader's form.
func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
