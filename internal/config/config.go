package config

import (
	"strings"

	"github.com/weiawesome/wes-io-social/internal/idgen"
	pkgconfig "github.com/weiawesome/wes-io-social/pkg/config"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	ID       idgen.Config  `mapstructure:"id"`
	CORS     CORSConfig    `mapstructure:"cors"`
	Events   pubsub.Config `mapstructure:"events"`
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	TimeZone        string `mapstructure:"timezone"`
	FilePath        string `mapstructure:"file_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads config.yaml from $CONFIG_PATH (default ./config) and the
// environment.
func Load() (*Config, error) {
	return LoadFrom(pkgconfig.GetEnv("CONFIG_PATH", "./config"))
}

// LoadFrom reads config.yaml from configPath and the environment.
func LoadFrom(configPath string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, "config")
	if err != nil {
		return nil, err
	}

	events := pubsub.DefaultConfig()

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3333)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "social")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.file_path", "./data/social.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("id.strategy", idgen.StrategyCUID2)
	v.SetDefault("id.cuid2_length", idgen.DefaultCUID2Length)
	v.SetDefault("id.nanoid_size", idgen.DefaultNanoIDSize)
	v.SetDefault("id.machine_id", 1)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("events.driver", events.Driver)
	v.SetDefault("events.redis.address", events.Redis.Address)
	v.SetDefault("events.redis.pool_size", events.Redis.PoolSize)
	v.SetDefault("events.redis.read_timeout", events.Redis.ReadTimeout)
	v.SetDefault("events.redis.write_timeout", events.Redis.WriteTimeout)
	v.SetDefault("events.redis.stream_max_len", events.Redis.StreamMaxLen)
	v.SetDefault("events.kafka.brokers", events.Kafka.Brokers)
	v.SetDefault("events.kafka.partitions", events.Kafka.Partitions)

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")
	v.BindEnv("database.file_path", "DB_FILE_PATH")
	v.BindEnv("database.log_level", "DB_LOG_LEVEL")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.pretty", "LOG_PRETTY")
	v.BindEnv("id.strategy", "ID_STRATEGY")
	v.BindEnv("id.machine_id", "ID_MACHINE_ID")
	v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	v.BindEnv("events.driver", "EVENTS_DRIVER")
	v.BindEnv("events.redis.address", "REDIS_ADDRESS")
	v.BindEnv("events.redis.password", "REDIS_PASSWORD")
	v.BindEnv("events.redis.stream_max_len", "REDIS_STREAM_MAX_LEN")
	v.BindEnv("events.kafka.brokers", "KAFKA_BROKERS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)
	return &cfg, nil
}

// splitOrigins accepts both a YAML list and a comma separated env value.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, entry := range in {
		for _, o := range strings.Split(entry, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
