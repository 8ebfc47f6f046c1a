package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		App                App      `json:"app" mapstructure:"app"`
		Postgres           Postgres `json:"postgres" mapstructure:"postgres"`
		Redis              Redis    `json:"redis" mapstructure:"redis"`
		SecretKey          string   `json:"secret_key" mapstructure:"secret_key"`
		NewRelicLicenseKey string   `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`

		Ledger             LedgerConfig             `json:"ledger" mapstructure:"ledger"`
		Settlement         SettlementConfig         `json:"settlement" mapstructure:"settlement"`
		Billing            BillingConfig            `json:"billing" mapstructure:"billing"`
		Webhook            WebhookConfig            `json:"webhook" mapstructure:"webhook"`
		MessageBroker      MessageBroker            `json:"message_broker" mapstructure:"message_broker"`
		BillingSystem      HTTPConfiguration        `json:"billing_system" mapstructure:"billing_system"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"max_open_connections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	LedgerConfig struct {
		// BalanceTTL bounds how long cached organization balances are served.
		BalanceTTL time.Duration `json:"balance_ttl" mapstructure:"balance_ttl"`
		// ReversalTimeRangeDays bounds how far back a journal group may be reversed.
		ReversalTimeRangeDays int `json:"reversal_time_range_days" mapstructure:"reversal_time_range_days"`
	}

	SettlementConfig struct {
		// DefaultMarkupBasisPoints applies when an organization has no override.
		DefaultMarkupBasisPoints int64         `json:"default_markup_basis_points" mapstructure:"default_markup_basis_points"`
		HandlerTimeout           time.Duration `json:"handler_timeout" mapstructure:"handler_timeout"`
	}

	BillingConfig struct {
		// MaxConcurrentClients caps the fan-out of a billing run.
		MaxConcurrentClients int           `json:"max_concurrent_clients" mapstructure:"max_concurrent_clients"`
		RunTimeout           time.Duration `json:"run_timeout" mapstructure:"run_timeout"`
	}

	WebhookConfig struct {
		SigningSecret      string        `json:"signing_secret" mapstructure:"signing_secret"`
		SignatureTolerance time.Duration `json:"signature_tolerance" mapstructure:"signature_tolerance"`
	}

	MessageBroker struct {
		Brokers         []string `json:"brokers" mapstructure:"brokers"`
		TopicSettlement string   `json:"topic_settlement" mapstructure:"topic_settlement"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url" mapstructure:"base_url"`
		SecretKey     string        `json:"secret_key" mapstructure:"secret_key"`
		RetryCount    int           `json:"retry_count" mapstructure:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time" mapstructure:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}
)

// Load reads config.<env>.yaml from the given paths and layers environment
// variables on top (QODA_APP_HTTP_PORT overrides app.http_port).
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", strings.ToLower(env)))
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{".", "./configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("QODA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
