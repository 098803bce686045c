package config

import (
	"os"
	"strconv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Log    LogConfig
	Report ReportConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type ReportConfig struct {
	ProductName         string
	DefaultChartSurface string
	ChartScale          int
	ChartWidth          int
	ChartHeight         int
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Fintracker"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", true),
		},
		Report: ReportConfig{
			ProductName:         getEnv("REPORT_PRODUCT_NAME", "Fintracker"),
			DefaultChartSurface: getEnv("REPORT_DEFAULT_CHART_SURFACE", "expenses-by-category"),
			ChartScale:          getEnvInt("REPORT_CHART_SCALE", 2),
			ChartWidth:          getEnvInt("REPORT_CHART_WIDTH", 512),
			ChartHeight:         getEnvInt("REPORT_CHART_HEIGHT", 320),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
