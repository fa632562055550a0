package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ai4life/career-advisor-go/internal/service/ai"
	"github.com/ai4life/career-advisor-go/internal/service/cache"
	"github.com/ai4life/career-advisor-go/internal/service/database"
)

type StatusHandler struct {
	models   *ai.Manager
	postgres *database.PostgresService
	cache    *cache.Service
	started  time.Time
}

func NewStatusHandler(models *ai.Manager, postgres *database.PostgresService, cacheService *cache.Service) *StatusHandler {
	return &StatusHandler{
		models:   models,
		postgres: postgres,
		cache:    cacheService,
		started:  time.Now(),
	}
}

// GET /health
func (h *StatusHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	dbOK := h.postgres != nil && h.postgres.Ping(ctx) == nil
	cacheOK := h.cache != nil && h.cache.IsConnected(ctx)

	status := "ok"
	if !dbOK || !cacheOK {
		status = "degraded"
	}

	RespondOK(c, gin.H{
		"status":   status,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
		"database": dbOK,
		"cache":    cacheOK,
	})
}

// GET /api/ai/status
func (h *StatusHandler) ModelStatus(c *gin.Context) {
	enabled := h.models != nil && h.models.Enabled()

	payload := gin.H{
		"enabled":  enabled,
		"fallback": "rule-engine",
	}
	if enabled {
		if status := h.models.GetCircuitStatus(); status != nil {
			payload["circuit"] = gin.H{
				"state":         status.State.String(),
				"failureCount":  status.FailureCount,
				"nextRetryTime": status.NextRetryTime,
			}
		}
	}
	RespondOK(c, payload)
}

// POST /api/ai/reset-circuit
func (h *StatusHandler) ResetCircuit(c *gin.Context) {
	if h.models != nil {
		h.models.ResetCircuit()
	}
	RespondOK(c, gin.H{"reset": true})
}
