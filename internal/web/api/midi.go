package api

import (
	"errors"

	"zigbeectl/internal/models"
	"zigbeectl/internal/services"
	webModels "zigbeectl/internal/web/models"

	"github.com/gin-gonic/gin"
)

func RegisterMidiRoutes(r *gin.Engine, service *services.ControlService) {
	midi := r.Group("/midi")
	{
		midi.GET("/mapping", func(c *gin.Context) {
			c.JSON(200, service.MappingTable())
		})

		midi.POST("/events", func(c *gin.Context) {
			var req webModels.MidiEventRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(400, gin.H{"error": "Invalid request"})
				return
			}

			result, err := service.HandleMidiEvent(models.MidiEvent{
				EventType: req.EventType,
				Channel:   *req.Channel,
				Key:       req.Key,
				Timestamp: req.Timestamp,
			})
			if err != nil {
				if errors.Is(err, services.ErrChannelRange) || errors.Is(err, services.ErrChannelUnmapped) {
					c.JSON(400, gin.H{"error": err.Error()})
					return
				}
				c.JSON(500, gin.H{"error": "Failed to handle MIDI event"})
				return
			}
			c.JSON(200, result)
		})
	}
}
