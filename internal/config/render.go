package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// RenderConfig tunes the PDF layout without a rebuild.
type RenderConfig struct {
	TitleFontSize  float64 `mapstructure:"titleFontSize"`
	BodyFontSize   float64 `mapstructure:"bodyFontSize"`
	TableFontSize  float64 `mapstructure:"tableFontSize"`
	LogoPercent    float64 `mapstructure:"logoPercent"`
	PageNumbering  bool    `mapstructure:"pageNumbering"`
	TableRowHeight float64 `mapstructure:"tableRowHeight"`
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TitleFontSize:  20,
		BodyFontSize:   10,
		TableFontSize:  9,
		LogoPercent:    80,
		PageNumbering:  true,
		TableRowHeight: 8,
	}
}

// RenderConfigHolder hands out the current render config and hot-reloads
// megabooks.yml when it changes on disk. An invalid file is ignored wholesale.
type RenderConfigHolder struct {
	current atomic.Value // holds RenderConfig
}

// RenderModule provides the render config holder.
var RenderModule = fx.Provide(NewRenderConfigHolder)

func NewRenderConfigHolder() (*RenderConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("megabooks")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/megabooks")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MEGABOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultRenderConfig()
	v.SetDefault("render.titleFontSize", defaults.TitleFontSize)
	v.SetDefault("render.bodyFontSize", defaults.BodyFontSize)
	v.SetDefault("render.tableFontSize", defaults.TableFontSize)
	v.SetDefault("render.logoPercent", defaults.LogoPercent)
	v.SetDefault("render.pageNumbering", defaults.PageNumbering)
	v.SetDefault("render.tableRowHeight", defaults.TableRowHeight)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg RenderConfig
	if err := v.UnmarshalKey("render", &cfg); err != nil {
		return nil, err
	}
	if err := validateRenderConfig(cfg); err != nil {
		return nil, err
	}

	holder := &RenderConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated RenderConfig
		if err := v.UnmarshalKey("render", &updated); err != nil {
			log.Printf("[render-config] reload failed: %v", err)
			return
		}
		if err := validateRenderConfig(updated); err != nil {
			log.Printf("[render-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[render-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticRenderConfigHolder returns a holder pinned to cfg, with no file
// watching. Intended for tests.
func NewStaticRenderConfigHolder(cfg RenderConfig) *RenderConfigHolder {
	holder := &RenderConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *RenderConfigHolder) Get() RenderConfig {
	return h.current.Load().(RenderConfig)
}

func validateRenderConfig(cfg RenderConfig) error {
	if cfg.TitleFontSize <= 0 || cfg.BodyFontSize <= 0 || cfg.TableFontSize <= 0 {
		return errors.New("render font sizes must be positive")
	}
	if cfg.LogoPercent <= 0 || cfg.LogoPercent > 100 {
		return errors.New("render.logoPercent must be in (0, 100]")
	}
	if cfg.TableRowHeight <= 0 {
		return errors.New("render.tableRowHeight must be positive")
	}
	return nil
}
