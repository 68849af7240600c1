package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	MQTTHost     string `mapstructure:"MQTT_HOST"`
	MQTTPort     int    `mapstructure:"MQTT_PORT"`
	MQTTClientID string `mapstructure:"MQTT_CLIENT_ID"`
	Z2MDataDir   string `mapstructure:"Z2M_DATA_DIR"`
	GroupsFile   string `mapstructure:"GROUPS_FILE"`
	ListenPort   int    `mapstructure:"CONTROL_API_PORT"`
}

// LoadConfig reads configuration from .env or env vars, falling back to
// the documented defaults.
func LoadConfig() (*Config, error) {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("MQTT_HOST", "mosquitto")
	viper.SetDefault("MQTT_PORT", 1883)
	viper.SetDefault("MQTT_CLIENT_ID", "zigbee-control-api")
	viper.SetDefault("Z2M_DATA_DIR", "/app/zigbee2mqtt-data")
	viper.SetDefault("GROUPS_FILE", "/app/data/groups.json")
	viper.SetDefault("MIDI_BULB_IDS", "")
	viper.SetDefault("CONTROL_API_PORT", 8080)

	cfg := &Config{
		MQTTHost:     viper.GetString("MQTT_HOST"),
		MQTTPort:     viper.GetInt("MQTT_PORT"),
		MQTTClientID: viper.GetString("MQTT_CLIENT_ID"),
		Z2MDataDir:   viper.GetString("Z2M_DATA_DIR"),
		GroupsFile:   viper.GetString("GROUPS_FILE"),
		ListenPort:   viper.GetInt("CONTROL_API_PORT"),
	}
	return cfg, nil
}

// MidiBulbIDs returns the raw comma-delimited bulb ID list. It is read
// live on every call, so changing MIDI_BULB_IDS takes effect on the next
// request without a restart.
func (c *Config) MidiBulbIDs() string {
	return viper.GetString("MIDI_BULB_IDS")
}
