package web

import (
	"zigbeectl/internal/services"
	"zigbeectl/internal/web/api"

	"github.com/gin-gonic/gin"
)

type WebServer struct {
	router *gin.Engine
}

func NewWebServer(service *services.ControlService) *WebServer {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.RegisterDeviceRoutes(router, service)
	api.RegisterGroupRoutes(router, service)
	api.RegisterPairingRoutes(router, service)
	api.RegisterMidiRoutes(router, service)

	return &WebServer{router: router}
}

func (ws *WebServer) Start(addr string) {
	ws.router.Run(addr)
}
