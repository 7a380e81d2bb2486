package config

import (
    "fmt"

    "github.com/spf13/viper"
)

type Config struct {
    ServerPort    string `mapstructure:"SERVER_PORT"`
    QueueCapacity int    `mapstructure:"QUEUE_CAPACITY"`
    NumWorkers    int    `mapstructure:"NUM_WORKERS"`

    // Redis config (view dedup store)
    RedisHost     string `mapstructure:"REDIS_HOST"`
    RedisPort     string `mapstructure:"REDIS_PORT"`
    RedisPassword string `mapstructure:"REDIS_PASSWORD"`
    RedisDB       int    `mapstructure:"REDIS_DB"`

    // Geolocation service config
    GeoServiceURL     string `mapstructure:"GEO_SERVICE_URL"`
    GeoTimeoutSeconds int    `mapstructure:"GEO_TIMEOUT_SECONDS"`

    // Analytics sink config
    AnalyticsURL   string `mapstructure:"ANALYTICS_URL"`
    EventIndexName string `mapstructure:"EVENT_INDEX_NAME"`
    FlushThreshold int    `mapstructure:"FLUSH_THRESHOLD"`
    FlushInterval  int    `mapstructure:"FLUSH_INTERVAL"`
    MaxRetries     int    `mapstructure:"MAX_RETRIES"`

    // Submission triage config
    PhraseBlockThreshold int `mapstructure:"PHRASE_BLOCK_THRESHOLD"`

    LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
    // Set defaults for configuration values
    viper.SetDefault("SERVER_PORT", "8080")
    viper.SetDefault("QUEUE_CAPACITY", 1000)
    viper.SetDefault("NUM_WORKERS", 4)

    // Redis defaults
    viper.SetDefault("REDIS_HOST", "localhost")
    viper.SetDefault("REDIS_PORT", "6379")
    viper.SetDefault("REDIS_PASSWORD", "")
    viper.SetDefault("REDIS_DB", 0)

    // Geolocation defaults
    viper.SetDefault("GEO_SERVICE_URL", "http://localhost:8090/geo")
    viper.SetDefault("GEO_TIMEOUT_SECONDS", 2)

    // Analytics sink defaults
    viper.SetDefault("ANALYTICS_URL", "http://localhost:9200/_bulk")
    viper.SetDefault("EVENT_INDEX_NAME", "view_events")
    viper.SetDefault("FLUSH_THRESHOLD", 3)
    viper.SetDefault("FLUSH_INTERVAL", 30)
    viper.SetDefault("MAX_RETRIES", 3)

    viper.SetDefault("PHRASE_BLOCK_THRESHOLD", 5)
    viper.SetDefault("LOG_LEVEL", "info")

    viper.AutomaticEnv()

    var config Config
    if err := viper.Unmarshal(&config); err != nil {
        return nil, fmt.Errorf("failed to unmarshal config: %w", err)
    }
    return &config, nil
}
