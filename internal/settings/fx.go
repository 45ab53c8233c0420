package settings

import (
	"github.com/smallbiznis/megabooks/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("settings.store",
	fx.Provide(func(cfg config.Config, logger *zap.Logger) (*Store, error) {
		return NewStore(cfg.DataPath("settings.json"), logger)
	}),
)
