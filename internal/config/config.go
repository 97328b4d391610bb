package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	LogLevel  string
	LogFormat string

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64
}

// Load reads configuration from the environment, with an optional .env file
// for local development and an optional enertrack.yml alongside the binary.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("enertrack")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/enertrack")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "enertrack")
	v.SetDefault("app_version", "dev")
	v.SetDefault("environment", "development")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_type", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "enertrack")
	v.SetDefault("db_user", "enertrack")
	v.SetDefault("db_password", "")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_idle_conn", 5)
	v.SetDefault("db_max_open_conn", 25)
	v.SetDefault("db_conn_max_lifetime", 300)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_exporter_endpoint", "")
	v.SetDefault("otel_exporter_protocol", "grpc")
	v.SetDefault("otel_sampling_ratio", 0.1)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		AppName:              v.GetString("app_name"),
		AppVersion:           v.GetString("app_version"),
		Environment:          v.GetString("environment"),
		HTTPAddr:             v.GetString("http_addr"),
		DBType:               v.GetString("db_type"),
		DBHost:               v.GetString("db_host"),
		DBPort:               v.GetString("db_port"),
		DBName:               v.GetString("db_name"),
		DBUser:               v.GetString("db_user"),
		DBPassword:           v.GetString("db_password"),
		DBSSLMode:            v.GetString("db_sslmode"),
		DBMaxIdleConn:        v.GetInt("db_max_idle_conn"),
		DBMaxOpenConn:        v.GetInt("db_max_open_conn"),
		DBConnMaxLifetime:    v.GetInt("db_conn_max_lifetime"),
		LogLevel:             strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		LogFormat:            strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		OtelEnabled:          v.GetBool("otel_enabled"),
		OtelExporterEndpoint: strings.TrimSpace(v.GetString("otel_exporter_endpoint")),
		OtelExporterProtocol: strings.ToLower(strings.TrimSpace(v.GetString("otel_exporter_protocol"))),
		OtelSamplingRatio:    v.GetFloat64("otel_sampling_ratio"),
	}, nil
}

func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
