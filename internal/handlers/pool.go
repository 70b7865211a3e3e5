package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/maxtek/threadpool/api/v1"
	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

// GetPool returns the pool status
// (GET /pool)
func (h *Handler) GetPool(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewPoolStatusFromModel(h.pool.Stats()))
}

// ShutdownPool shuts the pool down and waits for its workers
// (POST /pool/shutdown)
func (h *Handler) ShutdownPool(c *gin.Context) {
	if err := h.pool.Shutdown(); err != nil {
		if srvErrors.IsAlreadyShutdownError(err) {
			c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
			return
		}
		zap.S().Named("pool_handler").Errorw("failed to shut down pool", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to shut down pool"})
		return
	}

	zap.S().Named("pool_handler").Info("pool shut down via API")
	c.JSON(http.StatusOK, v1.NewPoolStatusFromModel(h.pool.Stats()))
}
