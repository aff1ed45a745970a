package config

import (
	"log"
	"os"
	"sync"
)

const Version = "1.0.0"

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Version string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		name := os.Getenv("APP_NAME")
		if name == "" {
			name = "AI Analytics Service"
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = "5001"
		}
		appConfig = &AppConfig{
			Name:    name,
			Env:     env,
			Port:    ":" + port,
			Version: Version,
		}
	})
	return appConfig
}
