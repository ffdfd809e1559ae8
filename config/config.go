package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Janitor   JanitorConfig   `mapstructure:"janitor"`
	Room      RoomConfig      `mapstructure:"room"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	AllowOrigins string        `mapstructure:"allow_origins"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// StorageConfig selects the room store: "postgres" or "memory".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"client_id"`
}

type RateLimitConfig struct {
	RequestsPerMinute      int `mapstructure:"requests_per_minute"`
	Burst                  int `mapstructure:"burst"`
	SwipeRequestsPerMinute int `mapstructure:"swipe_requests_per_minute"`
	SwipeBurst             int `mapstructure:"swipe_burst"`
}

type JanitorConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	RoomTTL  time.Duration `mapstructure:"room_ttl"`
}

type RoomConfig struct {
	CodeAttempts int `mapstructure:"code_attempts"`
}

func Read() Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("No .env file found, using process environment")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")

	setDefaults(viper.GetViper())

	// ENV overrides with prefix SWIPE_ and dot-to-underscore replacement
	viper.SetEnvPrefix("SWIPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "swipe-service")
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.port", "8083")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.allow_origins", "http://localhost:8081")
	v.SetDefault("server.idle_timeout", 5*time.Second)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("storage.driver", "postgres")

	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "myuser")
	v.SetDefault("postgres.password", "mypassword")
	v.SetDefault("postgres.db", "swipedb")
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "room-events")
	v.SetDefault("kafka.client_id", "swipe-service")

	v.SetDefault("ratelimit.requests_per_minute", 1200)
	v.SetDefault("ratelimit.burst", 100)
	v.SetDefault("ratelimit.swipe_requests_per_minute", 600)
	v.SetDefault("ratelimit.swipe_burst", 60)

	v.SetDefault("janitor.enabled", false)
	v.SetDefault("janitor.interval", 10*time.Minute)
	v.SetDefault("janitor.room_ttl", 24*time.Hour)

	v.SetDefault("room.code_attempts", 5)
}

// PostgresDSN builds the lib/pq connection string.
func (c PostgresConfig) PostgresDSN() string {
	return "host=" + c.Host +
		" port=" + c.Port +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.DB +
		" sslmode=" + c.SSLMode
}
