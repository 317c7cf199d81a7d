// Package api serves color conversion and gradient generation over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vazpera/vividry/internal/color"
	"github.com/Vazpera/vividry/internal/gradient"
	"github.com/Vazpera/vividry/internal/logger"
)

var log = logger.New("api")

// ParseFunc parses one color argument.
type ParseFunc func(string) (color.Color, error)

// Options configures a Server.
type Options struct {
	Parse         ParseFunc // defaults to color.FromHex
	DefaultNumber int       // samples when a gradient request omits number
	MaxNumber     int       // upper bound on requested samples
}

// ConvertRequest is the body of POST /api/convert
type ConvertRequest struct {
	Colors []string `json:"colors" binding:"required,min=1,max=1024"`
}

// GradientRequest is the body of POST /api/gradient
type GradientRequest struct {
	Colors []string `json:"colors" binding:"required,min=1,max=1024"`
	Number *int     `json:"number" binding:"omitempty,min=2"` // nil means DefaultNumber
}

// Server handles HTTP API requests
type Server struct {
	opts   Options
	router *gin.Engine
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	if opts.Parse == nil {
		opts.Parse = color.FromHex
	}
	if opts.DefaultNumber < 2 {
		opts.DefaultNumber = 5
	}
	if opts.MaxNumber < opts.DefaultNumber {
		opts.MaxNumber = opts.DefaultNumber
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply middleware in order
	router.Use(gin.Recovery())
	router.Use(LoggingMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(BodySizeLimitMiddleware(MaxBodySize))

	s := &Server{opts: opts, router: router}
	s.registerRoutes()
	return s
}

// Handler returns the HTTP handler for the API
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	apiGroup := s.router.Group("/api")
	{
		apiGroup.POST("/convert", s.handleConvert)
		apiGroup.POST("/gradient", s.handleGradient)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// handleConvert handles POST /api/convert
func (s *Server) handleConvert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	cols, err := s.parseAll(req.Colors)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	Success(c, newColorsResponse(cols))
}

// handleGradient handles POST /api/gradient
func (s *Server) handleGradient(c *gin.Context) {
	var req GradientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	number := s.opts.DefaultNumber
	if req.Number != nil {
		number = *req.Number
	}
	if number > s.opts.MaxNumber {
		Error(c, http.StatusBadRequest, fmt.Sprintf("number must be at most %d (got %d)", s.opts.MaxNumber, number))
		return
	}
	cols, err := s.parseAll(req.Colors)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := gradient.Generate(cols, number)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	Success(c, newColorsResponse(out))
}

func (s *Server) parseAll(args []string) ([]color.Color, error) {
	cols := make([]color.Color, 0, len(args))
	for i, a := range args {
		col, err := s.opts.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("vividry API listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
