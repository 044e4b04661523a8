package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DATABASE_SQLITE   = "sqlite3"
	DATABASE_POSTGRES = "postgres"
)

type Configuration struct {
	ApiPort  string `json:"api_port" yaml:"api_port"`
	LogPath  string `json:"log_path" yaml:"log_path"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	Database    string `json:"database" yaml:"database"` // "sqlite3" ou "postgres"
	DbHost      string `json:"db_host" yaml:"db_host"`
	DbPort      string `json:"db_port" yaml:"db_port"`
	DbUser      string `json:"db_user" yaml:"db_user"`
	DbName      string `json:"db_name" yaml:"db_name"`
	DbPass      string `json:"db_pass" yaml:"db_pass"`
	DbPath      string `json:"db_path" yaml:"db_path"`
	AutoMigrate *bool  `json:"automigrate" yaml:"automigrate"`

	Product struct {
		// DefaultTopic é usado quando o produto chega sem "topico".
		// 0 sorteia um tópico entre 1 e 4.
		DefaultTopic int `json:"default_topic" yaml:"default_topic"`
	} `json:"product" yaml:"product"`

	RateLimit struct {
		RPS   float64 `json:"rps" yaml:"rps"`
		Burst int     `json:"burst" yaml:"burst"`
	} `json:"rate_limit" yaml:"rate_limit"`

	Metrics struct {
		Enabled *bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`

	Workers struct {
		// DBCheckSeconds é o intervalo do ping no banco; 0 desliga.
		DBCheckSeconds int `json:"db_check_seconds" yaml:"db_check_seconds"`
	} `json:"workers" yaml:"workers"`
}

// Get lê o arquivo de configuração (json ou yaml), aplica variáveis de
// ambiente (.env incluso) e preenche os valores padrão.
// Um arquivo inexistente não é erro: a configuração fica só com env + defaults.
func Get(path string) (Configuration, error) {
	_ = godotenv.Load()

	var c Configuration
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, b, &c); err != nil {
				return c, fmt.Errorf("config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return c, err
		}
	}

	applyEnv(&c)
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func decode(path string, b []byte, c *Configuration) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, c)
	default:
		return json.Unmarshal(b, c)
	}
}

func applyEnv(c *Configuration) {
	setString(&c.ApiPort, "API_PORT")
	setString(&c.LogPath, "LOG_PATH")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Database, "DATABASE")
	setString(&c.DbHost, "DB_HOST")
	setString(&c.DbPort, "DB_PORT")
	setString(&c.DbUser, "DB_USER")
	setString(&c.DbName, "DB_NAME")
	setString(&c.DbPass, "DB_PASS")
	setString(&c.DbPath, "DB_PATH")

	if v := getenv("AUTOMIGRATE", ""); v != "" {
		b := v == "1" || strings.EqualFold(v, "true")
		c.AutoMigrate = &b
	}
	if v := getenv("PRODUCT_DEFAULT_TOPIC", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Product.DefaultTopic = n
		}
	}
	if v := getenv("RATE_LIMIT_RPS", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit.RPS = f
		}
	}
	if v := getenv("DB_CHECK_SECONDS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers.DBCheckSeconds = n
		}
	}
	if v := getenv("RATE_LIMIT_BURST", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimit.Burst = n
		}
	}
}

// defaults (pra evitar nil/zero chato)
func applyDefaults(c *Configuration) {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = DATABASE_SQLITE
	}
	if c.Database == "postgresql" {
		c.Database = DATABASE_POSTGRES
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.AutoMigrate == nil {
		on := true
		c.AutoMigrate = &on
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = int(c.RateLimit.RPS)
		if c.RateLimit.Burst < 1 {
			c.RateLimit.Burst = 1
		}
	}
	if c.Metrics.Enabled == nil {
		on := true
		c.Metrics.Enabled = &on
	}
}

func (c Configuration) Validate() error {
	if c.Database != DATABASE_SQLITE && c.Database != DATABASE_POSTGRES {
		return fmt.Errorf("database inválido: %q (use sqlite3 ou postgres)", c.Database)
	}
	if c.Product.DefaultTopic < 0 || c.Product.DefaultTopic > 4 {
		return fmt.Errorf("product.default_topic deve estar entre 0 e 4")
	}
	if c.Workers.DBCheckSeconds < 0 {
		return fmt.Errorf("workers.db_check_seconds não pode ser negativo")
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit.rps não pode ser negativo")
	}
	return nil
}

func (c Configuration) ShouldMigrate() bool {
	return c.AutoMigrate != nil && *c.AutoMigrate
}

func (c Configuration) MetricsEnabled() bool {
	return c.Metrics.Enabled != nil && *c.Metrics.Enabled
}

func setString(dst *string, key string) {
	if v := getenv(key, ""); v != "" {
		*dst = v
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
