package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Backend   BackendConfig   `yaml:"backend"   validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Session   SessionConfig   `yaml:"session"   validate:"required"`
	Notify    NotifyConfig    `yaml:"notify"    validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	DevServer DevServerConfig `yaml:"devserver"`
}

type BackendConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"BACKEND_BASE_URL"     env-default:"http://localhost:8000" validate:"required,url"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"BACKEND_HTTP_TIMEOUT" env-default:"15s"                   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
	Env    string `yaml:"env"    env:"LOG_ENV"    env-default:"dev"  validate:"required"`
}

// LogLevel maps the configured level string onto wbf logger levels.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type SessionConfig struct {
	Path string `yaml:"path" env:"SESSION_PATH" env-default:".eventms/session.json" validate:"required"`
}

type NotifyConfig struct {
	DispatchInterval  time.Duration `yaml:"dispatch_interval"   env:"NOTIFY_DISPATCH_INTERVAL"  env-default:"15s" validate:"required,gt=0"`
	BadgeSyncInterval time.Duration `yaml:"badge_sync_interval" env:"NOTIFY_BADGE_SYNC_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type DevServerConfig struct {
	Addr      string         `yaml:"addr"       env:"DEVSERVER_ADDR" env-default:":8000"`
	GinMode   string         `yaml:"gin_mode"   env:"GIN_MODE"       env-default:"debug"`
	JWTSecret string         `yaml:"jwt_secret" env:"JWT_SECRET"     env-default:"devsecret"`
	TokenTTL  time.Duration  `yaml:"token_ttl"  env:"TOKEN_TTL"      env-default:"24h" validate:"gt=0"`
	Postgres  PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	Enabled      bool   `yaml:"enabled"        env:"DB_ENABLED"        env-default:"false"`
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"eventms"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
