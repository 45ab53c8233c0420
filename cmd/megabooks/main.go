package main

import (
	"os"

	"github.com/smallbiznis/megabooks/internal/clock"
	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/contact"
	"github.com/smallbiznis/megabooks/internal/document"
	"github.com/smallbiznis/megabooks/internal/history"
	"github.com/smallbiznis/megabooks/internal/item"
	"github.com/smallbiznis/megabooks/internal/profile"
	"github.com/smallbiznis/megabooks/internal/providers/pdf"
	"github.com/smallbiznis/megabooks/internal/server"
	"github.com/smallbiznis/megabooks/internal/settings"
	"github.com/smallbiznis/megabooks/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		config.RenderModule,
		log.Module,
		clock.Module,

		// Stores
		contact.Module,
		item.Module,
		settings.Module,
		profile.Module,
		history.Module,

		// Document pipeline
		pdf.Module,
		document.Module,

		fx.Invoke(ensureDirs),
		server.Module,
	)
	app.Run()
}

func ensureDirs(cfg config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(cfg.OutputDir, 0o755)
}
