package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Probe reports whether one dependency is usable.
type Probe func(ctx context.Context) error

// RegisterHealth mounts /health (liveness) and /ready (readiness). /ready
// answers 503 as soon as one probe fails.
func RegisterHealth(r gin.IRouter, started time.Time, probes map[string]Probe) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ready := true
		deps := map[string]bool{}
		for name, probe := range probes {
			ok := probe(ctx) == nil
			deps[name] = ok
			if !ok {
				ready = false
			}
		}

		uptime := time.Since(started).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
