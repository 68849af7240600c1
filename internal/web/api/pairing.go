package api

import (
	"zigbeectl/internal/services"
	webModels "zigbeectl/internal/web/models"

	"github.com/gin-gonic/gin"
)

// defaultPairingDuration is used when the request carries no duration.
const defaultPairingDuration = 180

func RegisterPairingRoutes(r *gin.Engine, service *services.ControlService) {
	pairing := r.Group("/pairing")
	{
		pairing.POST("/start", func(c *gin.Context) {
			var req webModels.PairingStartRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(400, gin.H{"error": "Invalid request"})
				return
			}
			duration := defaultPairingDuration
			if req.DurationSeconds != nil {
				duration = *req.DurationSeconds
			}
			c.JSON(200, service.StartPairing(duration))
		})

		pairing.POST("/stop", func(c *gin.Context) {
			c.JSON(200, service.StopPairing())
		})
	}
}
