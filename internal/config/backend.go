package config

import (
	"os"
	"sync"
)

type BackendConfig struct {
	BaseURL string
}

var (
	backendConfig *BackendConfig
	backendOnce   sync.Once
)

func LoadBackendConfig() *BackendConfig {
	backendOnce.Do(func() {
		baseURL := os.Getenv("BACKEND_URL")
		if baseURL == "" {
			baseURL = "http://localhost:5000"
		}
		backendConfig = &BackendConfig{
			BaseURL: baseURL,
		}
	})
	return backendConfig
}
