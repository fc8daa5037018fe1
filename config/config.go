package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config gom các biến môi trường mà app cần
type Config struct {
	Env         string
	Port        string
	DBDriver    string
	DatabaseURL string
	AutoMigrate bool
	CORSOrigins []string
	LogLevel    string
	LogFile     string
	LogJSON     bool
	BcryptCost  int
}

// LoadEnv đọc file .env nếu có; thiếu file thì dùng biến môi trường sẵn có
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// Load dựng Config từ môi trường hiện tại
func Load() (*Config, error) {
	cfg := &Config{
		Env:         getEnvDefault("ENV", "dev"),
		Port:        getEnvDefault("PORT", "8083"),
		DBDriver:    getEnvDefault("DB_DRIVER", "pgx"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),
		LogLevel:    getEnvDefault("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
		LogJSON:     getEnvBool("LOG_JSON", false),
	}

	dsn, err := getDBConfigByEnv(cfg.Env)
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dsn

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", raw, err)
		}
		cfg.BcryptCost = cost
	}
	return cfg, nil
}

// getDBConfigByEnv: DATABASE_URL được ưu tiên, nếu không thì ghép DSN từ các biến <ENV>_DB_*
func getDBConfigByEnv(env string) (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}

	var prefix string
	switch env {
	case "dev":
		prefix = "DEV"
	case "qc":
		prefix = "QC"
	case "prod":
		prefix = "PROD"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	sslmode := "disable"
	if env == "prod" {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnvDefault(prefix+"_DB_HOST", "localhost"),
		os.Getenv(prefix+"_DB_USER"),
		os.Getenv(prefix+"_DB_PASSWORD"),
		os.Getenv(prefix+"_DB_NAME"),
		getEnvDefault(prefix+"_DB_PORT", "5432"),
		sslmode,
	), nil
}
