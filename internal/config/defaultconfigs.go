package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:         ":3000",
			AllowOrigins: "http://localhost:5173",
		},
		Game: GameConfig{
			ComputerOpponent: true,
			RandomSeed:       0,
		},
		Symbols: ConfigSymbols{
			WhitePawn: '♙',
			BlackPawn: '♟',
			Empty:     '·',
		},
	}
}
