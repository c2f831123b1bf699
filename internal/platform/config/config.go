package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// PostingAccounts holds the chart-of-accounts codes that documents and payments post to.
type PostingAccounts struct {
	Cash          string
	Bank          string
	Receivable    string
	Payable       string
	Sales         string
	Purchases     string
	TaxPayable    string
	TaxReceivable string
}

// Codes lists every configured code.
func (p PostingAccounts) Codes() []string {
	return []string{p.Cash, p.Bank, p.Receivable, p.Payable, p.Sales, p.Purchases, p.TaxPayable, p.TaxReceivable}
}

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	DBMaxConns         int32
	DBMinConns         int32
	DBMaxConnLifetime  time.Duration
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	LogLevel           string
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	RateLimit          string // ulule/limiter format, e.g. "300-M"
	CORSAllowedOrigins []string
	MigrationsPath     string
	Accounts           PostingAccounts
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PGSQL_MAX_CONNS", 10)
	viper.SetDefault("PGSQL_MIN_CONNS", 0)
	viper.SetDefault("PGSQL_MAX_CONN_LIFETIME", "1h")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "books-backend")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("ACCOUNT_CODE_CASH", "1000")
	viper.SetDefault("ACCOUNT_CODE_BANK", "1010")
	viper.SetDefault("ACCOUNT_CODE_RECEIVABLE", "1100")
	viper.SetDefault("ACCOUNT_CODE_TAX_RECEIVABLE", "1300")
	viper.SetDefault("ACCOUNT_CODE_PAYABLE", "2100")
	viper.SetDefault("ACCOUNT_CODE_TAX_PAYABLE", "2200")
	viper.SetDefault("ACCOUNT_CODE_SALES", "4000")
	viper.SetDefault("ACCOUNT_CODE_PURCHASES", "5000")

	// Defaults are overridden by .env values, which are in turn overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.DBMaxConns = viper.GetInt32("PGSQL_MAX_CONNS")
	cfg.DBMinConns = viper.GetInt32("PGSQL_MIN_CONNS")
	cfg.DBMaxConnLifetime = viper.GetDuration("PGSQL_MAX_CONN_LIFETIME")

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.Accounts = PostingAccounts{
		Cash:          viper.GetString("ACCOUNT_CODE_CASH"),
		Bank:          viper.GetString("ACCOUNT_CODE_BANK"),
		Receivable:    viper.GetString("ACCOUNT_CODE_RECEIVABLE"),
		Payable:       viper.GetString("ACCOUNT_CODE_PAYABLE"),
		Sales:         viper.GetString("ACCOUNT_CODE_SALES"),
		Purchases:     viper.GetString("ACCOUNT_CODE_PURCHASES"),
		TaxPayable:    viper.GetString("ACCOUNT_CODE_TAX_PAYABLE"),
		TaxReceivable: viper.GetString("ACCOUNT_CODE_TAX_RECEIVABLE"),
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
