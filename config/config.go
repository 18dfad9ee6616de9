package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	log "github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DBConfig holds the embedded database configuration
type DBConfig struct {
	Path string `mapstructure:"path"` // SQLite file path; ":memory:" for ephemeral stores
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"` // Slice of allowed origin strings
}

// RedisConfig holds the optional stats-cache configuration
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SeedConfig shapes the demo dataset generated when the store is empty.
type SeedConfig struct {
	Jobs                 int `mapstructure:"jobs"`
	Candidates           int `mapstructure:"candidates"`
	AssessmentJobs       int `mapstructure:"assessment_jobs"`
	AssignmentCap        int `mapstructure:"assignment_cap"`
	CandidateBatchSize   int `mapstructure:"candidate_batch_size"`
	ApplicationBatchSize int `mapstructure:"application_batch_size"`
	MaxRetries           int `mapstructure:"max_retries"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app/config")
	viper.AddConfigPath("/app")

	// --- Set Default Values ---
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("database.path", "talentflow.db")
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("seed.jobs", 25)
	viper.SetDefault("seed.candidates", 1000)
	viper.SetDefault("seed.assessment_jobs", 5)
	viper.SetDefault("seed.assignment_cap", 30)
	viper.SetDefault("seed.candidate_batch_size", 50)
	viper.SetDefault("seed.application_batch_size", 100)
	viper.SetDefault("seed.max_retries", 3)

	// --- Read Config File (Optional) ---
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	// --- Bind Environment Variables ---
	viper.SetEnvPrefix("TALENTFLOW")
	viper.AutomaticEnv()
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	// --- Unmarshal Config ---
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// --- Manual Override from Specific Environment Variables (Highest Priority) ---
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DB.Path = path
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
		cfg.Redis.Enabled = true
	}

	// Handle CORS_ALLOWED_ORIGINS env var (comma-separated string -> slice)
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Path=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.DB.Path, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}
