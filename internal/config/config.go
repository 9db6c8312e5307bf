package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort             string  `mapstructure:"SERVER_PORT"`
	OverpassURL            string  `mapstructure:"OVERPASS_URL"`
	OverpassTimeoutSeconds int     `mapstructure:"OVERPASS_TIMEOUT_SECONDS"`
	MaxUploadBytes         int64   `mapstructure:"MAX_UPLOAD_BYTES"`
	CorridorBufferDegrees  float64 `mapstructure:"CORRIDOR_BUFFER_DEGREES"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("OVERPASS_URL", "http://overpass-api.de/api/interpreter")
	viper.SetDefault("OVERPASS_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MAX_UPLOAD_BYTES", 10*1024*1024)
	// Corridor radius in planar degrees, roughly 50 meters at mid latitudes.
	viper.SetDefault("CORRIDOR_BUFFER_DEGREES", 0.0005)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

func (c Config) OverpassTimeout() time.Duration {
	return time.Duration(c.OverpassTimeoutSeconds) * time.Second
}
