package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/maxtek/threadpool/api/v1"
	"github.com/maxtek/threadpool/internal/demo"
	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

// RunDemo runs the producer/consumer demo on the pool and returns its report
// (POST /pool/demo)
func (h *Handler) RunDemo(c *gin.Context) {
	if !h.demoMu.TryLock() {
		c.JSON(http.StatusConflict, v1.Error{Error: "demo already running"})
		return
	}
	defer h.demoMu.Unlock()

	report, err := demo.Run(c.Request.Context(), h.pool, h.demo)
	if err != nil {
		switch {
		case srvErrors.IsRejectedError(err):
			c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
		case errors.Is(err, demo.ErrPoolTooSmall):
			c.JSON(http.StatusUnprocessableEntity, v1.Error{Error: err.Error()})
		default:
			zap.S().Named("pool_handler").Errorw("demo failed", "error", err)
			c.JSON(http.StatusInternalServerError, v1.Error{Error: "demo failed"})
		}
		return
	}

	c.JSON(http.StatusOK, v1.NewDemoReportFromModel(*report))
}
