package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
// Все дефолты разрешаются здесь, один раз при старте —
// бизнес-логика не читает переменные окружения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Mail     MailConfig     `toml:"mail"`
	Admin    AdminConfig    `toml:"admin"`
	Cron     CronConfig     `toml:"cron"`
	Site     SiteConfig     `toml:"site"`
}

// ServerConfig настройки HTTP сервера (все таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MailConfig настройки SMTP и адресаты служебных писем
type MailConfig struct {
	Host             string `toml:"host"`
	Port             int    `toml:"port"`
	User             string `toml:"user"`
	Password         string `toml:"password"`
	From             string `toml:"from"`
	SendTimeout      int    `toml:"send_timeout"` // секунды; ограничивает отправку письма после коммита
	SummaryRecipient string `toml:"summary_recipient"`
}

// AdminConfig учетные данные для bootstrap администратора и время жизни сессии
type AdminConfig struct {
	Email           string `toml:"email"`
	Password        string `toml:"password"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
}

// CronConfig общий секрет для cron-эндпоинтов
// Пустой секрет оставляет эндпоинты открытыми — это документированный
// операционный риск, а не поведение по умолчанию для production
type CronConfig struct {
	Secret string `toml:"secret"`
}

// SiteConfig параметры организации, используемые в письмах и настройках по умолчанию
type SiteConfig struct {
	BaseURL            string `toml:"base_url"`
	Timezone           string `toml:"timezone"`
	OrgName            string `toml:"org_name"`
	OrgAddress         string `toml:"org_address"`
	OrgPhone           string `toml:"org_phone"`
	DeliveryWindow     string `toml:"delivery_window"`
	DefaultKidCountMin int    `toml:"default_kid_count_min"`
	DefaultKidCountMax int    `toml:"default_kid_count_max"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "meal-signup-app",
		},
		Mail: MailConfig{
			Port:        587,
			SendTimeout: 15,
		},
		Admin: AdminConfig{
			SessionTTLHours: 168, // 7 дней
		},
		Site: SiteConfig{
			BaseURL:            "http://localhost:8080",
			Timezone:           "America/New_York",
			OrgName:            "Kids In Crisis",
			OrgAddress:         "1 Salem Street, Cos Cob, CT 06807",
			OrgPhone:           "(203) 661-1911",
			DeliveryWindow:     "12:00 PM - 5:00 PM",
			DefaultKidCountMin: 8,
			DefaultKidCountMax: 12,
		},
	}
}

func (c *Config) validate() error {
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database user and dbname are required")
	}
	if c.Site.DefaultKidCountMin <= 0 || c.Site.DefaultKidCountMax < c.Site.DefaultKidCountMin {
		return fmt.Errorf("config: invalid default kid count range %d-%d",
			c.Site.DefaultKidCountMin, c.Site.DefaultKidCountMax)
	}
	if c.Admin.Email == "" || c.Admin.Password == "" {
		return fmt.Errorf("config: admin email and password are required")
	}
	return nil
}
