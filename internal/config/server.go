package config

import (
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Server holds process settings for cmd/api, read from the environment and an optional .env file.
type Server struct {
	Port           string
	Env            string
	LogLevel       string
	ScenarioDir    string
	AllowedOrigins []string
	Cache          CacheConfig
}

type CacheConfig struct {
	Enabled       bool
	TTLSeconds    int
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

var (
	once     sync.Once
	instance *Server
)

// LoadServer reads server settings once per process.
func LoadServer() *Server {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()
		instance = readServer(viper.New())
	})
	return instance
}

func readServer(v *viper.Viper) *Server {
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SCENARIO_DIR", "./examples/scenarios")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL_SECONDS", 3600)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	// Read from environment variables
	v.AutomaticEnv()

	return &Server{
		Port:           v.GetString("API_PORT"),
		Env:            v.GetString("API_ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		ScenarioDir:    v.GetString("SCENARIO_DIR"),
		AllowedOrigins: splitList(v.GetStringSlice("ALLOWED_ORIGINS")),
		Cache: CacheConfig{
			Enabled:       v.GetBool("CACHE_ENABLED"),
			TTLSeconds:    v.GetInt("CACHE_TTL_SECONDS"),
			RedisURL:      v.GetString("REDIS_URL"),
			RedisHost:     v.GetString("REDIS_HOST"),
			RedisPort:     v.GetString("REDIS_PORT"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
	}
}

func (s *Server) IsProduction() bool { return s.Env == "production" }

// splitList accepts both YAML-style lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
