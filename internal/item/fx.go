package item

import (
	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/item/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("item.store",
	fx.Provide(func(cfg config.Config, logger *zap.Logger) (*store.Store, error) {
		return store.New(cfg.DataPath("items.json"), logger)
	}),
)
