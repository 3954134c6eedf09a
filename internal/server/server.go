package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server exposes the planning core over stateless JSON endpoints. It
// holds no database handle: pantry lists travel in request bodies.
type Server struct {
	log    *zap.Logger
	engine *gin.Engine
}

func New(log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))

	s := &Server{log: log, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api/v1")
	{
		api.GET("/ingredients", s.handleListIngredients)
		api.GET("/ingredients/:name", s.handleGetIngredient)
		api.GET("/presets", s.handleListPresets)
		api.POST("/energy", s.handleEnergy)
		api.POST("/ratio/normalize", s.handleNormalizeRatio)
		api.POST("/recommend", s.handleRecommend)
		api.POST("/plan", s.handlePlan)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.log.Info("listening", zap.String("addr", addr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-errCh
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
