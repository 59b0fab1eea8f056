package server

import (
	"time"

	"github.com/danmuck/wirecodec/internal/catalog"
	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/danmuck/wirecodec/internal/codec/frame"
	"github.com/danmuck/wirecodec/internal/config"
	"github.com/danmuck/wirecodec/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// Server exposes the message catalog over HTTP for frame inspection.
type Server struct {
	Node     string
	Addr     string
	Appeared time.Time

	catalog   *catalog.Catalog
	limits    frame.Limits
	maxBody   int64
	router    *gin.Engine
	authToken string
}

// New builds the catalog from cfg with codec events routed to the
// Prometheus collectors, and prepares the router middleware.
func New(cfg config.Config) (*Server, error) {
	observability.RegisterMetrics()
	cat, err := cfg.Catalog(codec.WithObserver(observability.NewCodecMetrics(cfg.Server.Node)))
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger, cfg.Server.Node))
	r.Use(observability.RequestMetricsMiddleware(cfg.Server.Node))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.Server.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	maxBody := cfg.Limits.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = config.DefaultConfig().Limits.MaxBodyBytes
	}

	return &Server{
		Node:      cfg.Server.Node,
		Addr:      cfg.Server.Addr,
		Appeared:  time.Now(),
		catalog:   cat,
		limits:    cfg.FrameLimits(),
		maxBody:   maxBody,
		router:    r,
		authToken: cfg.Server.AuthToken,
	}, nil
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	log.Info().
		Str("node", s.Node).
		Str("addr", s.Addr).
		Int("messages", s.catalog.Len()).
		Msg("inspection server listening")
	return s.router.Run(s.Addr)
}

// Inspect decodes every frame in data and records per-frame metrics.
func (s *Server) Inspect(data []byte) ([]catalog.Inspection, error) {
	results, err := s.catalog.Inspect(data, s.limits)
	for _, in := range results {
		observability.RecordFrame(s.Node, in.MessageID, in.Outcome, in.PayloadBytes)
	}
	return results, err
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
