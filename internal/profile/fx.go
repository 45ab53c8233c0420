package profile

import (
	"github.com/smallbiznis/megabooks/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("profile.store",
	fx.Provide(func(cfg config.Config, logger *zap.Logger) (*Store, error) {
		return NewStore(cfg.DataPath("business_details.json"), logger)
	}),
)
