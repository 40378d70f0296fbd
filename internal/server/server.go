// Package server exposes the analyzer to the browser extension over HTTP.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobscan/internal/analyze"
	"github.com/MrJJimenez/jobscan/internal/models"
)

type Server struct {
	engine   *gin.Engine
	analyzer *analyze.Analyzer
	logger   zerolog.Logger
	version  string
}

func New(analyzer *analyze.Analyzer, logger zerolog.Logger, version string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:   gin.New(),
		analyzer: analyzer,
		logger:   logger,
		version:  version,
	}

	s.engine.Use(gin.Recovery())

	// Requests arrive from an extension origin, not a regular page.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	s.engine.Use(cors.New(corsConfig))

	s.engine.GET("/health", s.health)
	s.engine.POST("/analyze", s.analyzePosting)

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("server listening")
	return s.engine.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": s.version})
}

func (s *Server) analyzePosting(c *gin.Context) {
	var in models.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	s.logger.Info().
		Str("url", in.URL).
		Str("title", in.Title).
		Int("text_len", len(in.RawText)).
		Msg("analyze request")

	c.JSON(http.StatusOK, s.analyzer.Analyze(in))
}
