package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"zigbeectl/internal/config"
	"zigbeectl/internal/mqtt"
	"zigbeectl/internal/services"
	"zigbeectl/internal/status"
	"zigbeectl/internal/store"
	"zigbeectl/internal/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	statuses := status.NewCache()

	broker := fmt.Sprintf("tcp://%s:%d", cfg.MQTTHost, cfg.MQTTPort)
	mqttClient, err := mqtt.NewClient(broker, cfg.MQTTClientID, statuses)
	if err != nil {
		log.Fatalf("Failed to connect to MQTT: %v", err)
	}

	deviceStore := store.NewDeviceStore(cfg.Z2MDataDir, statuses)
	groupStore := store.NewGroupStore(cfg.GroupsFile)

	service := services.NewControlService(mqttClient, deviceStore, groupStore, cfg.MidiBulbIDs)

	webServer := web.NewWebServer(service)
	go webServer.Start(fmt.Sprintf(":%d", cfg.ListenPort))

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	mqttClient.Disconnect()
	log.Println("Shutdown complete")
}
