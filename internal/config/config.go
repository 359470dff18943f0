package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	DatabaseDSN string
	ResetDB     bool
	BcryptCost  int
	AuthRealm   string
	SwaggerHost string

	// EmptyListNotFound makes list endpoints answer 404 instead of an empty array.
	EmptyListNotFound bool
}

var defaultDSN = map[string]string{
	"sqlite":   "file:blog.db?_foreign_keys=on",
	"mysql":    "user:password@tcp(localhost:3306)/blog?charset=utf8mb4&parseTime=True&loc=Local",
	"postgres": "host=localhost user=postgres password=postgres dbname=blog port=5432 sslmode=disable",
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	driver := getEnv("DB_DRIVER", "sqlite")
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DBDriver:          driver,
		DatabaseDSN:       getEnv("DATABASE_DSN", defaultDSN[driver]),
		ResetDB:           getEnvBool("RESET_DB", false),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		AuthRealm:         getEnv("AUTH_REALM", "blog"),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
		EmptyListNotFound: getEnvBool("EMPTY_LIST_NOT_FOUND", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
