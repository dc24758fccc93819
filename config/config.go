package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Host     string
	Port     string
	DBname   string
	Username string
	Password string
}

func (c Config) Dsn() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host,
		c.Username,
		c.Password,
		c.DBname,
		c.Port,
	)
}

func New() *Config {
	return &Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		DBname:   os.Getenv("DB_NAME"),
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
	}
}

func (c Config) ServerPort() string {
	return os.Getenv("SERVER_PORT")
}

// CacheStatsEnabled toggles the cache-statistics logging. Defaults to true
// when CACHE_STATS_ENABLED is unset or unparseable.
func (c Config) CacheStatsEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv("CACHE_STATS_ENABLED"))
	if err != nil {
		return true
	}
	return v
}

// CacheTTL reads CACHE_TTL as a duration. Zero means the store default.
func (c Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(os.Getenv("CACHE_TTL"))
	if err != nil {
		return 0
	}
	return d
}
