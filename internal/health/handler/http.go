package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger checks that a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves readiness and liveness for load balancers and CI.
type Handler struct {
	db Pinger
}

// NewHandler returns a health handler. db may be nil, in which case only liveness is reported.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Register mounts GET /healthz on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.Check)
}

// Check returns 200 {"status":"serving"} when the database answers a ping, else 503.
func (h *Handler) Check(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_serving", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "serving"})
}
