package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Oracle   OracleConfig   `mapstructure:"oracle"`
	Vault    VaultDefaults  `mapstructure:"vault"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// OracleConfig parameterises the price-feed adapter.
type OracleConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxStaleness time.Duration `mapstructure:"max_staleness"`
	UserAgent    string        `mapstructure:"user_agent"`
}

// VaultDefaults seeds the vault configuration row on first start.
// Amounts are decimal strings so operators can express sub-unit values.
type VaultDefaults struct {
	MinAmount          string        `mapstructure:"min_amount"`
	DepositCeiling     string        `mapstructure:"deposit_ceiling"` // per window, "0" = unlimited
	RedeemCeiling      string        `mapstructure:"redeem_ceiling"`
	WindowLength       time.Duration `mapstructure:"window_length"`
	RateToleranceBps   int64         `mapstructure:"rate_tolerance_bps"`
	VaultAccount       string        `mapstructure:"vault_account"`
	FeeReceiver        string        `mapstructure:"fee_receiver"`
	ProceedsReceiver   string        `mapstructure:"proceeds_receiver"`
	TokenDecimals      int32         `mapstructure:"token_decimals"`
	BootstrapAdminUser string        `mapstructure:"bootstrap_admin_user"`
	BootstrapAdminPass string        `mapstructure:"bootstrap_admin_pass"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TVLT_.
// Nested keys use underscore: TVLT_DATABASE_HOST, TVLT_VAULT_MIN_AMOUNT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "token_vault")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "8h")
	v.SetDefault("jwt.issuer", "token-vault")
	v.SetDefault("oracle.base_url", "")
	v.SetDefault("oracle.timeout", "10s")
	v.SetDefault("oracle.max_staleness", "5m")
	v.SetDefault("oracle.user_agent", "token-vault/1.0")
	v.SetDefault("vault.min_amount", "1")
	v.SetDefault("vault.deposit_ceiling", "0")
	v.SetDefault("vault.redeem_ceiling", "0")
	v.SetDefault("vault.window_length", "24h")
	v.SetDefault("vault.rate_tolerance_bps", 50)
	v.SetDefault("vault.vault_account", "vault")
	v.SetDefault("vault.fee_receiver", "")
	v.SetDefault("vault.proceeds_receiver", "treasury")
	v.SetDefault("vault.token_decimals", 18)
	v.SetDefault("vault.bootstrap_admin_user", "")
	v.SetDefault("vault.bootstrap_admin_pass", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TVLT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TVLT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Vault.WindowLength <= 0 {
		return fmt.Errorf("vault window_length must be positive")
	}
	if c.Vault.RateToleranceBps < 0 {
		return fmt.Errorf("vault rate_tolerance_bps must not be negative")
	}
	if c.Vault.VaultAccount == "" {
		return fmt.Errorf("vault account must be set")
	}
	for key, raw := range map[string]string{
		"min_amount":      c.Vault.MinAmount,
		"deposit_ceiling": c.Vault.DepositCeiling,
		"redeem_ceiling":  c.Vault.RedeemCeiling,
	} {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("vault %s is not a valid decimal: %w", key, err)
		}
		if d.IsNegative() {
			return fmt.Errorf("vault %s must not be negative", key)
		}
	}
	return nil
}
