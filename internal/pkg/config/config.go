package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed by injection to every component
// that needs it. Business logic never reads the environment directly.
type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// CORSOrigins defaults to the storefront dev hosts.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://127.0.0.1:3000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI              string `env:"MONGO_URI,         default=mongodb://localhost:27017"`
	Database         string `env:"MONGO_DB,          default=aathidyam"`
	UsersCollection  string `env:"USERS_COLLECTION,  default=users"`
	OrdersCollection string `env:"ORDERS_COLLECTION, default=orders"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
