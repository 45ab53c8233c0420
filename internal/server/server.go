// Package server exposes the catalog, settings and document operations over a
// local HTTP API backing the desktop UI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/megabooks/internal/config"
	contactstore "github.com/smallbiznis/megabooks/internal/contact/store"
	documentservice "github.com/smallbiznis/megabooks/internal/document/service"
	"github.com/smallbiznis/megabooks/internal/history"
	itemstore "github.com/smallbiznis/megabooks/internal/item/store"
	"github.com/smallbiznis/megabooks/internal/profile"
	"github.com/smallbiznis/megabooks/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(NewMetrics),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin() *gin.Engine {
	return NewEngine()
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	contacts *contactstore.Store
	items    *itemstore.Store
	settings *settings.Store
	profile  *profile.Store
	history  *history.Store
	docs     *documentservice.Service
	metrics  *Metrics
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	Log      *zap.Logger
	Contacts *contactstore.Store
	Items    *itemstore.Store
	Settings *settings.Store
	Profile  *profile.Store
	History  *history.Store
	Docs     *documentservice.Service
	Metrics  *Metrics
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:   p.Gin,
		cfg:      p.Cfg,
		log:      p.Log,
		contacts: p.Contacts,
		items:    p.Items,
		settings: p.Settings,
		profile:  p.Profile,
		history:  p.History,
		docs:     p.Docs,
		metrics:  p.Metrics,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Contacts --------
	api.GET("/contacts/:list", s.ListContacts)
	api.POST("/contacts/:list", s.CreateContact)
	api.PUT("/contacts/:list/:name", s.UpdateContact)
	api.DELETE("/contacts/:list/:name", s.DeleteContact)
	api.POST("/contacts/:list/:name/convert", s.ConvertProspect)

	// -------- Items --------
	api.GET("/items", s.ListItems)
	api.POST("/items", s.CreateItem)
	api.GET("/items/:id", s.GetItemByID)
	api.PATCH("/items/:id", s.UpdateItem)
	api.DELETE("/items/:id", s.DeleteItem)

	// -------- Settings --------
	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.UpdateSettings)

	// -------- Business profile --------
	api.GET("/business", s.GetBusinessProfile)
	api.PUT("/business", s.UpdateBusinessProfile)
	api.POST("/business/reset", s.ResetBusinessProfile)

	// -------- Documents --------
	api.POST("/documents/price", s.PriceDocument)
	api.POST("/documents", s.GenerateDocument)
	api.GET("/history", s.ListHistory)
}
