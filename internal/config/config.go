package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env    string
	Server ServerConfig
	Forms  FormsConfig
	HTTP   HTTPConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type FormsConfig struct {
	LogoPath    string
	TempDir     string
	TemplateDir string
}

type HTTPConfig struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() Config {
	return Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Forms: FormsConfig{
			LogoPath:    getEnv("LOGO_PATH", "assets/GMLogo.png"),
			TempDir:     getEnv("PDF_TEMP_DIR", os.TempDir()),
			TemplateDir: getEnv("TEMPLATE_OUTPUT_DIR", "."),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			// 0 disables the limiter; the portal calls from a single address
			RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 0),
			RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

// getList splits a comma separated value, dropping empty items.
func getList(key string, def []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
