package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Pagination PaginationConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Client is the surface consumed by the CLI client, read once at startup.
	Client ClientConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type RateLimitConfig struct {
	LoginPerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ClientConfig is everything the API client needs: base URL, transport
// timeout, and the storage key names for the token pair.
type ClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	AccessTokenKey  string
	RefreshTokenKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")

	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required - set it in config.yaml or via JWT_SECRET")
	}

	cfg.Pagination.DefaultPageSize = viper.GetInt("pagination.default_page_size")
	cfg.Pagination.MaxPageSize = viper.GetInt("pagination.max_page_size")

	cfg.RateLimit.LoginPerMin = viper.GetInt("rate_limit.login_per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, o := range strings.Split(rawOrigins, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.Client.BaseURL = viper.GetString("client.base_url")
	cfg.Client.Timeout = viper.GetDuration("client.timeout")
	cfg.Client.AccessTokenKey = viper.GetString("client.access_token_key")
	cfg.Client.RefreshTokenKey = viper.GetString("client.refresh_token_key")
	if apiURL := viper.GetString("api_base_url"); apiURL != "" {
		cfg.Client.BaseURL = apiURL
	}

	return cfg, nil
}

// LoadClient loads only the sections the CLI client needs. Unlike Load it
// does not require a JWT secret, so the CLI works without the server's
// config file present.
func LoadClient() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")

	cfg.Client.BaseURL = viper.GetString("client.base_url")
	cfg.Client.Timeout = viper.GetDuration("client.timeout")
	cfg.Client.AccessTokenKey = viper.GetString("client.access_token_key")
	cfg.Client.RefreshTokenKey = viper.GetString("client.refresh_token_key")
	if apiURL := viper.GetString("api_base_url"); apiURL != "" {
		cfg.Client.BaseURL = apiURL
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "taskmanager.db")

	viper.SetDefault("jwt.access_ttl", "30m")
	viper.SetDefault("jwt.refresh_ttl", "24h")

	viper.SetDefault("pagination.default_page_size", 10)
	viper.SetDefault("pagination.max_page_size", 100)

	viper.SetDefault("rate_limit.login_per_min", 30)

	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")

	viper.SetDefault("client.base_url", "http://localhost:8000")
	viper.SetDefault("client.timeout", "10s")
	viper.SetDefault("client.access_token_key", "access_token")
	viper.SetDefault("client.refresh_token_key", "refresh_token")
}
