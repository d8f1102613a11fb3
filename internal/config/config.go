package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PayrollConfig holds the labor-policy parameters. The default figures
// model a 15-hour allowance threshold against a 40-hour standard week,
// with 1.5x overtime and holiday premiums and a 0.5x night differential
// between 22:00 and 06:00.
type PayrollConfig struct {
	MinHoursForAllowance decimal.Decimal
	AllowanceDayHours    decimal.Decimal
	StandardWeekHours    decimal.Decimal
	StandardDayHours     decimal.Decimal
	OvertimeMultiplier   decimal.Decimal
	NightMultiplier      decimal.Decimal
	HolidayMultiplier    decimal.Decimal
	NightStart           string
	NightEnd             string
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "scon"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll policy configuration
	payrollCfg := PayrollConfig{
		NightStart: getEnv("PAYROLL_NIGHT_START", "22:00"),
		NightEnd:   getEnv("PAYROLL_NIGHT_END", "06:00"),
	}
	for _, field := range []struct {
		dst      *decimal.Decimal
		key      string
		fallback string
	}{
		{&payrollCfg.MinHoursForAllowance, "PAYROLL_MIN_HOURS_FOR_ALLOWANCE", "15"},
		{&payrollCfg.AllowanceDayHours, "PAYROLL_ALLOWANCE_DAY_HOURS", "8"},
		{&payrollCfg.StandardWeekHours, "PAYROLL_STANDARD_WEEK_HOURS", "40"},
		{&payrollCfg.StandardDayHours, "PAYROLL_STANDARD_DAY_HOURS", "8"},
		{&payrollCfg.OvertimeMultiplier, "PAYROLL_OVERTIME_MULTIPLIER", "1.5"},
		{&payrollCfg.NightMultiplier, "PAYROLL_NIGHT_MULTIPLIER", "0.5"},
		{&payrollCfg.HolidayMultiplier, "PAYROLL_HOLIDAY_MULTIPLIER", "1.5"},
	} {
		value, err := decimal.NewFromString(getEnv(field.key, field.fallback))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", field.key, err)
		}
		*field.dst = value
	}
	config.Payroll = payrollCfg

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	return strings.Split(getEnv(key, fallback), ",")
}
