package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// HealthServer exposes the liveness endpoints hosting platforms probe.
type HealthServer struct {
	server  *http.Server
	started time.Time
}

// NewHealthServer creates a new health endpoint server
func NewHealthServer(addr string) *HealthServer {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	h := &HealthServer{
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		started: time.Now().UTC(),
	}

	router.GET("/", h.handleHealth)
	router.GET("/health", h.handleHealth)

	return h
}

func (h *HealthServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"uptimeSeconds": int64(time.Since(h.started).Seconds()),
	})
}

// Start serves until Shutdown is called. It blocks, so run it on its own
// goroutine.
func (h *HealthServer) Start() error {
	log.WithField("addr", h.server.Addr).Info("Starting health server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (h *HealthServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
