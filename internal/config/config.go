package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMongo    = "mongodb"
)

type Config struct {
	Environment string
	LogLevel    string
	GinMode     string
	HTTPPort    string

	StorageDriver string
	SQLitePath    string
	DatabaseURL   string
	MongoURI      string
	MongoDB       string

	RedisAddr string
	CacheTTL  time.Duration

	UseKafka     bool
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
	OutboxPeriod time.Duration
	OutboxLimit  int

	ClickHouseAddr     string
	ClickHouseDB       string
	AnalyticsInterval  time.Duration
	AnalyticsBatchSize int

	SeedFile           string
	CORSAllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_PATH", "./coincatalog.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "coincatalog")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("USE_KAFKA", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "catalog-events")
	v.SetDefault("KAFKA_GROUP_ID", "coincatalog")
	v.SetDefault("OUTBOX_PERIOD", "1s")
	v.SetDefault("OUTBOX_LIMIT", 10)
	v.SetDefault("CLICKHOUSE_ADDR", "")
	v.SetDefault("CLICKHOUSE_DB", "default")
	v.SetDefault("ANALYTICS_INTERVAL", "5s")
	v.SetDefault("ANALYTICS_BATCH_SIZE", 100)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// LoadConfig lee .env (fuera de producción), un config.yaml opcional en
// configPath y las variables de entorno, en ese orden de menor a mayor
// prioridad.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if v.GetString("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("⚠️ .env no encontrado, se usan variables de entorno: %v", err)
		}
	}

	if configPath != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Environment:        v.GetString("GO_ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		GinMode:            v.GetString("GIN_MODE"),
		HTTPPort:           v.GetString("HTTP_PORT"),
		StorageDriver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		MongoURI:           v.GetString("MONGO_URI"),
		MongoDB:            v.GetString("MONGO_DB"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		CacheTTL:           v.GetDuration("CACHE_TTL"),
		UseKafka:           v.GetBool("USE_KAFKA"),
		KafkaBrokers:       splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:         v.GetString("KAFKA_TOPIC"),
		KafkaGroupID:       v.GetString("KAFKA_GROUP_ID"),
		OutboxPeriod:       v.GetDuration("OUTBOX_PERIOD"),
		OutboxLimit:        v.GetInt("OUTBOX_LIMIT"),
		ClickHouseAddr:     v.GetString("CLICKHOUSE_ADDR"),
		ClickHouseDB:       v.GetString("CLICKHOUSE_DB"),
		AnalyticsInterval:  v.GetDuration("ANALYTICS_INTERVAL"),
		AnalyticsBatchSize: v.GetInt("ANALYTICS_BATCH_SIZE"),
		SeedFile:           v.GetString("SEED_FILE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate comprueba las combinaciones que no tienen un valor por defecto útil.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for driver %q", c.StorageDriver)
		}
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for driver %q", c.StorageDriver)
		}
	case DriverMongo:
		if c.MongoURI == "" || c.MongoDB == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DB are required for driver %q", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.UseKafka && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when USE_KAFKA is set")
	}
	if c.OutboxPeriod <= 0 || c.OutboxLimit <= 0 {
		return fmt.Errorf("OUTBOX_PERIOD and OUTBOX_LIMIT must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
