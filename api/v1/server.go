package v1

import "github.com/gin-gonic/gin"

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get pool status
	// (GET /pool)
	GetPool(c *gin.Context)
	// Shut the pool down
	// (POST /pool/shutdown)
	ShutdownPool(c *gin.Context)
	// Run the producer/consumer demo on the pool
	// (POST /pool/demo)
	RunDemo(c *gin.Context)
}

// RegisterHandlers registers the API routes on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/pool", si.GetPool)
	router.POST("/pool/shutdown", si.ShutdownPool)
	router.POST("/pool/demo", si.RunDemo)
}
