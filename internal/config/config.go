package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// LogMaxSizeMB rotates the log file once it grows past this size. Default 50.
	LogMaxSizeMB int `toml:"log_max_size_mb"`
	// LogMaxAgeDays drops rotated files older than this. Default 90.
	LogMaxAgeDays int `toml:"log_max_age_days"`

	SentryEnabled          bool    `toml:"sentry_enabled"`
	SentryTracesSampleRate float64 `toml:"sentry_traces_sample_rate"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	TokenTTLHours              int      `toml:"token_ttl_hours"`
	AuthRateLimitAllowedPerMin int      `toml:"auth_rate_limit_allowed_per_min"`
	AllowedOrigins             []string `toml:"allowed_origins"`

	Pagination        Pagination        `toml:"pagination"`
	Compliance        Compliance        `toml:"compliance"`
	NutritionDefaults NutritionDefaults `toml:"nutrition_defaults"`
}

// Pagination bounds the limit/offset list endpoints.
type Pagination struct {
	// DefaultLimit is used when the request has no limit param. Default 50.
	DefaultLimit int `toml:"default_limit"`
	// MaxLimit caps any requested limit. Default 200.
	MaxLimit int `toml:"max_limit"`
}

// Compliance holds the targets behind the dashboard compliance score.
type Compliance struct {
	// MonthlyWorkouts is the number of workouts in the last 30 days scoring 100%. Default 20.
	MonthlyWorkouts int `toml:"monthly_workouts"`
	// DailyRoutines is the number of routine completions per day scoring 100%. Default 2.
	DailyRoutines int `toml:"daily_routines"`
	// DailyCalories is the calorie intake per day scoring 100%. Default 2500.
	DailyCalories float64 `toml:"daily_calories"`
}

// NutritionDefaults are the targets used for users who never set their own.
type NutritionDefaults struct {
	Calories float64 `toml:"calories"`  // default 2500
	ProteinG float64 `toml:"protein_g"` // default 150
	CarbsG   float64 `toml:"carbs_g"`   // default 300
	FatG     float64 `toml:"fat_g"`     // default 80
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c *Config) IsProduction() bool {
	return IsProductionEnv(c.Environment)
}

func IsProductionEnv(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// DefaultConfig returns a config with every field set to its documented default.
func DefaultConfig() *Config {
	return &Config{
		Environment:                "development",
		Host:                       "localhost",
		Port:                       9000,
		LogLevel:                   "debug",
		LogToStdout:                true,
		LogMaxSizeMB:               50,
		LogMaxAgeDays:              90,
		SentryTracesSampleRate:     0.2,
		PostgresHost:               "localhost",
		PostgresPort:               "5432",
		PostgresDBName:             "grindlog",
		PostgresUser:               "postgres",
		RedisHost:                  "localhost",
		RedisPort:                  "6379",
		PrometheusMetricsHost:      "localhost",
		PrometheusMetricsPort:      "2112",
		TokenTTLHours:              24 * 7,
		AuthRateLimitAllowedPerMin: 15,
		AllowedOrigins:             []string{"http://localhost:3000", "http://localhost:5173"},
		Pagination: Pagination{
			DefaultLimit: 50,
			MaxLimit:     200,
		},
		Compliance: Compliance{
			MonthlyWorkouts: 20,
			DailyRoutines:   2,
			DailyCalories:   2500,
		},
		NutritionDefaults: NutritionDefaults{
			Calories: 2500,
			ProteinG: 150,
			CarbsG:   300,
			FatG:     80,
		},
	}
}

type Toml struct {
	Development *Config
	Production  *Config
	Test        *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "test":
		cfg = t.Test
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with every missing value filled from DefaultConfig.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	setString(&c.Host, d.Host)
	setInt(&c.Port, d.Port)
	setString(&c.LogLevel, d.LogLevel)
	setInt(&c.LogMaxSizeMB, d.LogMaxSizeMB)
	setInt(&c.LogMaxAgeDays, d.LogMaxAgeDays)
	setFloat(&c.SentryTracesSampleRate, d.SentryTracesSampleRate)
	setString(&c.PostgresHost, d.PostgresHost)
	setString(&c.PostgresPort, d.PostgresPort)
	setString(&c.PostgresDBName, d.PostgresDBName)
	setString(&c.PostgresUser, d.PostgresUser)
	setString(&c.RedisHost, d.RedisHost)
	setString(&c.RedisPort, d.RedisPort)
	setString(&c.PrometheusMetricsHost, d.PrometheusMetricsHost)
	setString(&c.PrometheusMetricsPort, d.PrometheusMetricsPort)
	setInt(&c.TokenTTLHours, d.TokenTTLHours)
	setInt(&c.AuthRateLimitAllowedPerMin, d.AuthRateLimitAllowedPerMin)
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = d.AllowedOrigins
	}
	setInt(&c.Pagination.DefaultLimit, d.Pagination.DefaultLimit)
	setInt(&c.Pagination.MaxLimit, d.Pagination.MaxLimit)
	setInt(&c.Compliance.MonthlyWorkouts, d.Compliance.MonthlyWorkouts)
	setInt(&c.Compliance.DailyRoutines, d.Compliance.DailyRoutines)
	setFloat(&c.Compliance.DailyCalories, d.Compliance.DailyCalories)
	setFloat(&c.NutritionDefaults.Calories, d.NutritionDefaults.Calories)
	setFloat(&c.NutritionDefaults.ProteinG, d.NutritionDefaults.ProteinG)
	setFloat(&c.NutritionDefaults.CarbsG, d.NutritionDefaults.CarbsG)
	setFloat(&c.NutritionDefaults.FatG, d.NutritionDefaults.FatG)
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("pagination default limit %d exceeds max limit %d", c.Pagination.DefaultLimit, c.Pagination.MaxLimit)
	}
	if c.SentryTracesSampleRate < 0 || c.SentryTracesSampleRate > 1 {
		return fmt.Errorf("sentry traces sample rate must be within [0, 1], got %g", c.SentryTracesSampleRate)
	}
	if c.TokenTTLHours < 1 {
		return fmt.Errorf("token ttl must be at least one hour, got %d", c.TokenTTLHours)
	}
	return nil
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
