package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig             `toml:"server"`
	Logs               LogsConfig               `toml:"logs"`
	Metrics            MetricsConfig            `toml:"metrics"`
	Tracing            TracingConfig            `toml:"tracing"`
	Database           DatabaseConfig           `toml:"database"`
	ReservationService ReservationServiceConfig `toml:"reservation_service"`
	Parking            ParkingConfig            `toml:"parking"`
	Jobs               JobsConfig               `toml:"jobs"`
	CORS               CORSConfig               `toml:"cors"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TracingConfig параметры OpenTelemetry
type TracingConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Endpoint    string `toml:"endpoint"`
	Insecure    bool   `toml:"insecure"`
}

// DatabaseConfig параметры Postgres; при Enabled=false абонементы хранятся в памяти
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// ReservationServiceConfig параметры удаленного Reservation Service
type ReservationServiceConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"` // секунды на одну доставку
	Workers   int    `toml:"workers"`
	QueueSize int    `toml:"queue_size"`
}

// ParkingConfig раскладка мест и список филиалов
type ParkingConfig struct {
	CarSpots     int            `toml:"car_spots"`
	CarCapacity  int            `toml:"car_capacity"`
	BikeSpots    int            `toml:"bike_spots"`
	BikeCapacity int            `toml:"bike_capacity"`
	Branches     []BranchConfig `toml:"branches"`
}

// BranchConfig филиал из конфигурации
type BranchConfig struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
	City string `toml:"city"`
}

// JobsConfig параметры периодических задач
type JobsConfig struct {
	Enabled            bool   `toml:"enabled"`
	PassExpirySchedule string `toml:"pass_expiry_schedule"`
}

// CORSConfig параметры CORS для фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла.
// Перед чтением подгружается .env (если есть), затем переменные окружения перекрывают значения файла.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Tracing: TracingConfig{
			ServiceName: "parking-service",
			Endpoint:    "http://localhost:4318",
			Insecure:    true,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		ReservationService: ReservationServiceConfig{
			URL:       "http://localhost:5000",
			Timeout:   5,
			Workers:   2,
			QueueSize: 100,
		},
		Parking: ParkingConfig{
			CarSpots:     domain.DefaultCarSpots,
			CarCapacity:  domain.DefaultCarCapacity,
			BikeSpots:    domain.DefaultBikeSpots,
			BikeCapacity: domain.DefaultBikeCapacity,
		},
		Jobs: JobsConfig{
			Enabled:            true,
			PassExpirySchedule: "5 0 * * *",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

// DSN строка подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Layout раскладка мест дашборда
func (p ParkingConfig) Layout() domain.SpotLayout {
	return domain.SpotLayout{
		CarSpots:     p.CarSpots,
		CarCapacity:  p.CarCapacity,
		BikeSpots:    p.BikeSpots,
		BikeCapacity: p.BikeCapacity,
	}
}

// BranchList филиалы из конфигурации или филиалы по умолчанию
func (p ParkingConfig) BranchList() []domain.Branch {
	if len(p.Branches) == 0 {
		return domain.DefaultBranches()
	}

	result := make([]domain.Branch, 0, len(p.Branches))
	for _, b := range p.Branches {
		result = append(result, domain.Branch{
			Code: strings.ToLower(strings.TrimSpace(b.Code)),
			Name: b.Name,
			City: b.City,
		})
	}
	return result
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Parking.CarSpots < 0 || c.Parking.BikeSpots < 0 || c.Parking.CarSpots+c.Parking.BikeSpots == 0 {
		return fmt.Errorf("%w: parking layout must contain at least one spot", ErrInvalidConfig)
	}
	if c.Parking.CarSpots > 0 && c.Parking.CarCapacity <= 0 {
		return fmt.Errorf("%w: parking.car_capacity must be positive", ErrInvalidConfig)
	}
	if c.Parking.BikeSpots > 0 && c.Parking.BikeCapacity <= 0 {
		return fmt.Errorf("%w: parking.bike_capacity must be positive", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Parking.Branches))
	for _, b := range c.Parking.Branches {
		code := strings.ToLower(strings.TrimSpace(b.Code))
		if code == "" {
			return fmt.Errorf("%w: parking.branches entry without code", ErrInvalidConfig)
		}
		if seen[code] {
			return fmt.Errorf("%w: duplicate branch code %q", ErrInvalidConfig, code)
		}
		seen[code] = true
	}

	if c.ReservationService.URL == "" {
		return fmt.Errorf("%w: reservation_service.url is required", ErrInvalidConfig)
	}
	if c.ReservationService.Workers <= 0 || c.ReservationService.QueueSize <= 0 {
		return fmt.Errorf("%w: reservation_service.workers and queue_size must be positive", ErrInvalidConfig)
	}
	if c.ReservationService.Timeout <= 0 {
		return fmt.Errorf("%w: reservation_service.timeout must be positive", ErrInvalidConfig)
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required when database is enabled", ErrInvalidConfig)
	}

	if c.Jobs.Enabled && c.Jobs.PassExpirySchedule == "" {
		return fmt.Errorf("%w: jobs.pass_expiry_schedule is required when jobs are enabled", ErrInvalidConfig)
	}

	return nil
}

// applyEnv перекрывает значения файла переменными окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}

	if v := os.Getenv("RESERVATION_SERVICE_URL"); v != "" {
		c.ReservationService.URL = v
	}

	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}

	return nil
}
