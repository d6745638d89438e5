package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	// Environment
	Env     string // "development", "production", etc.
	Version string

	// Server
	Host        string
	Port        string
	CORSOrigins string // Comma-separated allowed origins, "*" for any

	// Knowledge base
	TopicsFile  string // YAML topic file; empty serves the stock table
	WatchTopics bool   // Reload TopicsFile when it changes on disk

	// Record store
	StorePath string // SQLite database path; empty keeps records in memory

	// Answers
	HandbookName string
	SupportPhone string
	SupportHours string
	SupportWait  string
}

// LoadConfig reads configuration from the environment, after merging an optional .env file.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		Env:          getEnv("ENV", "development"),
		Version:      getEnv("SERVICE_VERSION", "3.0.0"),
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8005"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		TopicsFile:   getEnv("TOPICS_FILE", ""),
		WatchTopics:  getBool("TOPICS_WATCH"),
		StorePath:    getEnv("STORE_PATH", ""),
		HandbookName: getEnv("HANDBOOK_NAME", "Insurance Policy Handbook"),
		SupportPhone: getEnv("SUPPORT_PHONE", "1234567890"),
		SupportHours: getEnv("SUPPORT_HOURS", "24/7 Support Available"),
		SupportWait:  getEnv("SUPPORT_WAIT", "Average wait: 2 minutes"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Addr is the listen address
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// AllowedOrigins splits CORSOrigins for the CORS middleware
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
