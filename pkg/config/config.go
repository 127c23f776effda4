package config

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEnvPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	v *viper.Viper
}

// New returns process-wide config loaded from ./configs/.env and the environment.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(defaultEnvPath)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envPath if it exists. Real environment variables take precedence over the file.
func Load(envPath string) (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err = godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("reading %s: %w", envPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", envPath, err)
	}
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	setDefaults(v)
	v.AutomaticEnv()
	return &Config{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_ADDRESS", ":8080")
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("MIGRATIONS_DIR", "./migrations")
	v.SetDefault("MIGRATE_ON_START", false)
	v.SetDefault("QUEST_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("SCHEME_CREDIT_THRESHOLD", 100)
	v.SetDefault("STREAK_LOOKBACK_DAYS", 365)
	v.SetDefault("CATALOG_CACHE_SIZE", 256)
	v.SetDefault("CATALOG_CACHE_TTL", time.Minute)
	v.SetDefault("REFDATA_DIR", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("REQUEST_TIMEOUT", 5*time.Second)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}
