package api

import (
	"zigbeectl/internal/services"
	webModels "zigbeectl/internal/web/models"

	"github.com/gin-gonic/gin"
)

func RegisterDeviceRoutes(r *gin.Engine, service *services.ControlService) {
	devices := r.Group("/devices")
	{
		devices.GET("", func(c *gin.Context) {
			c.JSON(200, service.ListDevices())
		})

		devices.GET("/:device_id", func(c *gin.Context) {
			device, ok := service.GetDevice(c.Param("device_id"))
			if !ok {
				c.JSON(404, gin.H{"error": "Device not found"})
				return
			}
			c.JSON(200, device)
		})

		devices.POST("/:device_id/state", func(c *gin.Context) {
			var req webModels.StateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(400, gin.H{"error": "Invalid request"})
				return
			}

			deviceID := c.Param("device_id")
			device, ok := service.SetDeviceState(deviceID, req.State, req.Brightness)
			if !ok {
				// The command was still published; echo the target.
				c.JSON(200, gin.H{"device_id": deviceID})
				return
			}
			c.JSON(200, device)
		})

		devices.POST("/:device_id/refresh", func(c *gin.Context) {
			deviceID := c.Param("device_id")
			device, ok := service.RefreshDevice(deviceID)
			if !ok {
				c.JSON(200, gin.H{"device_id": deviceID})
				return
			}
			c.JSON(200, device)
		})
	}
}
