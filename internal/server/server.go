package server

import (
	"context"
	"net/http"
	"time"

	"github.com/etcglobal/invoicestudio/internal/config"
	"github.com/etcglobal/invoicestudio/internal/document"
	documentdomain "github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/etcglobal/invoicestudio/internal/observability"
	obsmiddleware "github.com/etcglobal/invoicestudio/internal/observability/logger"
	obsmetrics "github.com/etcglobal/invoicestudio/internal/observability/metrics"
	obstracing "github.com/etcglobal/invoicestudio/internal/observability/tracing"
	"github.com/etcglobal/invoicestudio/internal/providers/pdf"
	"github.com/etcglobal/invoicestudio/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	config.Module,
	observability.Module,
	document.Module,
	render.Module,
	pdf.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
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
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	documentSvc documentdomain.Service
	renderer    render.Renderer
	pdfProvider pdf.Provider
	metrics     *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	DocumentSvc documentdomain.Service
	Renderer    render.Renderer
	PDFProvider pdf.Provider
	Metrics     *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log,
		documentSvc: p.DocumentSvc,
		renderer:    p.Renderer,
		pdfProvider: p.PDFProvider,
		metrics:     p.Metrics,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/document", s.GetDocument)
	api.PUT("/document/fields/:field", s.SetField)
	api.PUT("/document/bank/:field", s.SetBankField)
	api.POST("/document/line-items", s.AddLineItem)
	api.PATCH("/document/line-items/:id", s.UpdateLineItem)
	api.DELETE("/document/line-items/:id", s.RemoveLineItem)
	api.POST("/document/header-image", s.AttachHeaderImage)
	api.DELETE("/document/header-image", s.ClearHeaderImage)

	api.GET("/preview", s.Preview)
	api.GET("/export", s.Export)
}
