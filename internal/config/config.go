package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// TokenTTL - срок жизни токена подключения, не настраивается
	TokenTTL = 5 * time.Minute

	serverURLKey       = "SERVER_URL"
	regionalURLPrefix  = serverURLKey + "_"
	defaultCORSOrigins = "*"
)

type Config struct {
	Environment string
	Server      ServerConfig
	LiveKit     LiveKitConfig
	Token       TokenConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Redis       RedisConfig
	Database    DatabaseConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LiveKitConfig struct {
	APIKey    string
	APISecret string
	// ServerURL - адрес сервера по умолчанию (SERVER_URL)
	ServerURL string
	// RegionalURLs - SERVER_URL_<REGION>, ключ в верхнем регистре
	RegionalURLs map[string]string
}

type TokenConfig struct {
	DeriveBotName   bool
	RegionalRouting bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled - Redis используется только если задан адрес
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type DatabaseConfig struct {
	DSN            string
	MaxConnections int
}

// Enabled - журнал выдачи пишется только если задан DSN
func (c DatabaseConfig) Enabled() bool {
	return c.DSN != ""
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Загрузка .env файла (если существует)
	_ = godotenv.Load()

	return load(os.LookupEnv, os.Environ())
}

func load(lookup func(string) (string, bool), environ []string) (*Config, error) {
	env := envReader{lookup: lookup}

	cfg := &Config{
		Environment: env.get("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         env.getInt("SERVER_PORT", 8080),
			Host:         env.get("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  env.getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: env.getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		LiveKit: LiveKitConfig{
			APIKey:       env.get("LIVEKIT_API_KEY", ""),
			APISecret:    env.get("LIVEKIT_API_SECRET", ""),
			ServerURL:    env.get(serverURLKey, ""),
			RegionalURLs: regionalURLs(environ),
		},
		Token: TokenConfig{
			DeriveBotName:   env.getBool("TOKEN_DERIVE_BOT_NAME", true),
			RegionalRouting: env.getBool("TOKEN_REGIONAL_ROUTING", true),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(env.get("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		},
		RateLimit: RateLimitConfig{
			Requests: env.getInt("RATE_LIMIT_REQUESTS", 100),
			Window:   env.getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Redis: RedisConfig{
			Addr:     env.get("REDIS_ADDR", ""),
			Password: env.get("REDIS_PASSWORD", ""),
			DB:       env.getInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN:            env.get("DATABASE_DSN", ""),
			MaxConnections: env.getInt("DATABASE_MAX_CONNECTIONS", 5),
		},
		Log: LogConfig{
			Level: env.get("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.LiveKit.APIKey == "" || c.LiveKit.APISecret == "" {
		return fmt.Errorf("LIVEKIT_API_KEY and LIVEKIT_API_SECRET must be set")
	}
	if c.LiveKit.ServerURL == "" && len(c.LiveKit.RegionalURLs) == 0 {
		return fmt.Errorf("%s must be set", serverURLKey)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT %d is out of range", c.Server.Port)
	}
	return nil
}

// IsProduction - включает release режим gin и JSON логи
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// regionalURLs собирает все SERVER_URL_<REGION> из окружения
func regionalURLs(environ []string) map[string]string {
	urls := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" || !strings.HasPrefix(key, regionalURLPrefix) {
			continue
		}
		region := strings.TrimPrefix(key, regionalURLPrefix)
		if region == "" {
			continue
		}
		urls[strings.ToUpper(region)] = value
	}
	return urls
}

// RegionalURLKey возвращает имя переменной окружения для региона
func RegionalURLKey(region string) string {
	if region == "" {
		return serverURLKey
	}
	return regionalURLPrefix + strings.ToUpper(region)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type envReader struct {
	lookup func(string) (string, bool)
}

func (e envReader) get(key, defaultValue string) string {
	if value, ok := e.lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func (e envReader) getInt(key string, defaultValue int) int {
	valueStr := e.get(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func (e envReader) getBool(key string, defaultValue bool) bool {
	valueStr := e.get(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func (e envReader) getDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := e.get(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
