package main

import (
	"log/slog"
	"os"

	"github.com/socialpulse/darijapulse/config"
	"github.com/socialpulse/darijapulse/internal/api"
	"github.com/socialpulse/darijapulse/internal/engine"
	"github.com/socialpulse/darijapulse/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	eng := engine.New(config.GetEngineParams())
	server := api.NewServer(eng)

	slog.Info("[API] Listening...", slog.String("addr", addr))
	if err := server.Router().Run(addr); err != nil {
		slog.Error("[API] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
