package contact

import (
	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/contact/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("contact.store",
	fx.Provide(func(cfg config.Config, logger *zap.Logger) (*store.Store, error) {
		return store.New(cfg.DataPath("clients_prospects.json"), logger)
	}),
)
