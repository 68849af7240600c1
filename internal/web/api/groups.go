package api

import (
	"errors"

	"zigbeectl/internal/services"
	"zigbeectl/internal/store"
	webModels "zigbeectl/internal/web/models"

	"github.com/gin-gonic/gin"
)

func RegisterGroupRoutes(r *gin.Engine, service *services.ControlService) {
	groups := r.Group("/groups")
	{
		groups.GET("", func(c *gin.Context) {
			c.JSON(200, service.ListGroups())
		})

		groups.POST("", func(c *gin.Context) {
			var req webModels.GroupCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(400, gin.H{"error": "Invalid request"})
				return
			}

			group, err := service.CreateGroup(req.Name, req.DeviceIDs)
			if err != nil {
				if errors.Is(err, store.ErrGroupExists) {
					c.JSON(400, gin.H{"error": "Group already exists"})
					return
				}
				c.JSON(500, gin.H{"error": "Failed to save group"})
				return
			}
			c.JSON(200, group)
		})

		groups.POST("/:group_id/state", func(c *gin.Context) {
			var req webModels.StateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(400, gin.H{"error": "Invalid request"})
				return
			}

			groupID := c.Param("group_id")
			service.SetGroupState(groupID, req.State, req.Brightness)
			c.JSON(200, gin.H{"group_id": groupID, "state": req.State, "brightness": req.Brightness})
		})
	}
}
