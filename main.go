// Package main runs the Lamassu Studio website
package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/lamassu-studio/website/internal/config"
	"github.com/lamassu-studio/website/internal/handlers"
	"github.com/lamassu-studio/website/internal/host"
	"github.com/lamassu-studio/website/internal/metrics"
	"github.com/lamassu-studio/website/internal/server"
	"github.com/lamassu-studio/website/internal/session"
	"github.com/lamassu-studio/website/pkg/logger"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Supply(server.Assets{FS: staticSub}),

		// Infrastructure
		logger.Module,
		config.Module,
		metrics.Module,
		server.Module,

		// Key gate
		host.Module,
		session.Module,

		// Pages
		handlers.Module,
	).Run()
}
