package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"github.com/gridbits/enertrack/internal/config"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	"github.com/gridbits/enertrack/internal/observability"
	obsmiddleware "github.com/gridbits/enertrack/internal/observability/logger"
	obsmetrics "github.com/gridbits/enertrack/internal/observability/metrics"
	obstracing "github.com/gridbits/enertrack/internal/observability/tracing"
	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(RunHTTP),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	deviceSvc    devicedomain.Service
	usageSvc     usagedomain.Service
	aggregateSvc aggregatedomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	DeviceSvc    devicedomain.Service
	UsageSvc     usagedomain.Service
	AggregateSvc aggregatedomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		deviceSvc:    p.DeviceSvc,
		usageSvc:     p.UsageSvc,
		aggregateSvc: p.AggregateSvc,
	}
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

// RegisterAPIRoutes wires the ledger API. Writes require a caller principal;
// reads are unrestricted.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/devices", RequireCaller(), s.RegisterDevice)
	api.GET("/devices", s.ListDevices)
	api.GET("/devices/:id", s.GetDevice)

	api.POST("/devices/:id/energy", RequireCaller(), s.RecordEnergyUsage)
	api.GET("/devices/:id/energy", s.GetDeviceEnergyData)

	api.GET("/devices/:id/aggregates/:month", s.GetMonthlyAggregate)
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
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
