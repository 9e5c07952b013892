package main

import (
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/benbeisheim/hexapawn-backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"http://localhost:5173", []string{"http://localhost:5173"}},
		{"http://a.test, http://b.test", []string{"http://a.test", "http://b.test"}},
		{"*", []string{"*"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitOrigins(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitOrigins(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewAppRoutes(t *testing.T) {
	cfg := config.DefaultConfig
	app := NewApp(&cfg)

	req := httptest.NewRequest("GET", "/ws/game/g1", nil)
	req.Header.Set("X-Player-ID", "p1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("plain GET on the websocket route status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}

	req = httptest.NewRequest("POST", "/api/game/create", nil)
	req.Header.Set("X-Player-ID", "p1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("create status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
}
