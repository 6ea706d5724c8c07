package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	TaxTableSourceStatic   = "static"
	TaxTableSourceDynamoDB = "dynamodb"
)

// Config is the runtime configuration, read from environment variables.
// A .env file is loaded beforehand by godotenv/autoload in cmd/.
type Config struct {
	Port     int
	AppEnv   string
	LogLevel string

	TaxTableSource string
	TaxTableYear   string
	TaxTablesTable string

	AWSRegion        string
	DynamoDBEndpoint string

	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string

	MetricsNamespace string
}

// Load reads the configuration and validates it.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	cfg := Config{
		Port:     port,
		AppEnv:   strings.ToLower(getenvDefault("APP_ENV", "dev")),
		LogLevel: os.Getenv("LOG_LEVEL"),

		TaxTableSource: strings.ToLower(getenvDefault("TAX_TABLE_SOURCE", TaxTableSourceStatic)),
		TaxTableYear:   getenvDefault("TAX_TABLE_YEAR", "2026"),
		TaxTablesTable: getenvDefault("TAX_TABLES_TABLE", "tax_tables"),

		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),

		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		CORSAllowedMethods: splitList(getenvDefault("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
		CORSAllowedHeaders: splitList(getenvDefault("CORS_ALLOWED_HEADERS", "Origin,Content-Type,Accept,Authorization")),

		MetricsNamespace: getenvDefault("METRICS_NAMESPACE", "nbtech_pricing"),
	}

	switch cfg.TaxTableSource {
	case TaxTableSourceStatic, TaxTableSourceDynamoDB:
	default:
		return Config{}, fmt.Errorf("invalid TAX_TABLE_SOURCE %q", cfg.TaxTableSource)
	}

	return cfg, nil
}

// IsProduction reports whether logs should be JSON and gin run in release mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
