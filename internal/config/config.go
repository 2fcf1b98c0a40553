// Package config loads and holds the application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Conf is populated by Init.
var Conf Config

// Config mirrors configs/config.yaml.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Log           LogConfig           `mapstructure:"log"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Chatbot       ChatbotConfig       `mapstructure:"chatbot"`
	Admin         AdminConfig         `mapstructure:"admin"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds all datastore connections.
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret                 string `mapstructure:"secret"`
	AccessTokenExpireHours int    `mapstructure:"access_token_expire_hours"`
	RefreshTokenExpireDays int    `mapstructure:"refresh_token_expire_days"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// KafkaConfig holds the chat event topic settings.
type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ElasticsearchConfig holds the resource index settings.
type ElasticsearchConfig struct {
	Addresses string `mapstructure:"addresses"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	IndexName string `mapstructure:"index_name"`
	// CacheTTL bounds how long search results are memoized in process.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// MinIOConfig holds the offline bundle bucket settings.
type MinIOConfig struct {
	Endpoint        string        `mapstructure:"endpoint"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	BucketName      string        `mapstructure:"bucket_name"`
	URLExpiry       time.Duration `mapstructure:"url_expiry"`
}

// LLMConfig holds the OpenAI-compatible chat endpoint used by the live
// responder.
type LLMConfig struct {
	APIKey     string              `mapstructure:"api_key"`
	BaseURL    string              `mapstructure:"base_url"`
	Model      string              `mapstructure:"model"`
	Timeout    time.Duration       `mapstructure:"timeout"`
	Generation LLMGenerationConfig `mapstructure:"generation"`
}

// LLMGenerationConfig holds optional sampling parameters.
type LLMGenerationConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// ChatbotConfig controls the vaccine Q&A responder.
type ChatbotConfig struct {
	// Backend is "canned" or "llm".
	Backend string `mapstructure:"backend"`
	// ResponseDelay simulates backend latency for the canned responder.
	ResponseDelay time.Duration `mapstructure:"response_delay"`
	// ContentPath optionally replaces the built-in response tables.
	ContentPath     string        `mapstructure:"content_path"`
	DefaultLanguage string        `mapstructure:"default_language"`
	HistoryLimit    int           `mapstructure:"history_limit"`
	HistoryTTL      time.Duration `mapstructure:"history_ttl"`
}

// AdminConfig seeds the first administrator at startup. Seeding is skipped
// when Phone is empty or the account already exists.
type AdminConfig struct {
	Phone    string `mapstructure:"phone"`
	Name     string `mapstructure:"name"`
	Password string `mapstructure:"password"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8081")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("jwt.access_token_expire_hours", 24)
	v.SetDefault("jwt.refresh_token_expire_days", 7)
	v.SetDefault("kafka.topic", "chat-exchanges")
	v.SetDefault("kafka.group_id", "vaccine-village-stats")
	v.SetDefault("elasticsearch.index_name", "vaccine_resources")
	v.SetDefault("elasticsearch.cache_ttl", "5m")
	v.SetDefault("admin.name", "Administrator")
	v.SetDefault("minio.bucket_name", "offline-bundles")
	v.SetDefault("minio.url_expiry", "24h")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("chatbot.backend", "canned")
	v.SetDefault("chatbot.response_delay", "1500ms")
	v.SetDefault("chatbot.default_language", "en")
	v.SetDefault("chatbot.history_limit", 100)
	v.SetDefault("chatbot.history_ttl", "720h")
}

// Load reads the YAML file at configPath into a Config.
func Load(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Init loads configPath into Conf and panics on failure.
func Init(configPath string) {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	Conf = cfg
}
