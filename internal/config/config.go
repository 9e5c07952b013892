package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gofiber/fiber/v2/log"
)

var (
	cfgFile = "hexapawn/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ServerConfig struct {
	Addr         string `json:"addr"`
	AllowOrigins string `json:"allow_origins"`
}

type GameConfig struct {
	// ComputerOpponent makes black answer from the catalogue automatically.
	ComputerOpponent bool `json:"computer_opponent"`
	// RandomSeed seeds move selection; 0 uses the clock.
	RandomSeed int64 `json:"random_seed"`
}

type ConfigSymbols struct {
	WhitePawn rune `json:"white"`
	BlackPawn rune `json:"black"`
	Empty     rune `json:"empty"`
}

type Config struct {
	LogLevel string        `json:"log_level"`
	Server   ServerConfig  `json:"server"`
	Game     GameConfig    `json:"game"`
	Symbols  ConfigSymbols `json:"symbols"`
}

// InitConfig returns the defaults overlaid with the user's config file, if
// one exists under the XDG config directories.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config file at filePath on top of the defaults.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("loaded config from %s", filePath)
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &InvalidConfig{"server address must not be empty"}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, r := range []rune{c.Symbols.WhitePawn, c.Symbols.BlackPawn, c.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// Level maps LogLevel onto fiber's log levels.
func (c *Config) Level() (log.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "", "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
