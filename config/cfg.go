package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/gemstore/analytics-manager/internal/api/http"
	"github.com/gemstore/analytics-manager/internal/bucket"
	"github.com/gemstore/analytics-manager/internal/digest"
	"github.com/gemstore/analytics-manager/internal/mail"
	"github.com/gemstore/analytics-manager/internal/ratelimit"
	"github.com/gemstore/analytics-manager/internal/report"
	"github.com/gemstore/analytics-manager/internal/store"
	"github.com/gemstore/analytics-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Report    report.Config    `mapstructure:"report"`
	Bucket    bucket.Config    `mapstructure:"bucket"`
	Mailer    mail.Config      `mapstructure:"mailer"`
	Digest    digest.Config    `mapstructure:"digest"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, HTTP_JWT_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/analytics-manager")
		v.AddConfigPath("/etc/analytics-manager")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a MySQL DSN from DigitalOcean's db.* or MYSQL_* env vars.
func dsnFromEnv() string {
	var mysqlHost, mysqlPort, mysqlUser, mysqlPassword, mysqlDatabase string

	if dbHost := os.Getenv("db.HOSTNAME"); dbHost != "" {
		mysqlHost = dbHost
		mysqlPort = os.Getenv("db.PORT")
		mysqlUser = os.Getenv("db.USERNAME")
		mysqlPassword = os.Getenv("db.PASSWORD")
		mysqlDatabase = os.Getenv("db.DATABASE")
	} else {
		mysqlHost = os.Getenv("MYSQL_HOST")
		mysqlPort = os.Getenv("MYSQL_PORT")
		mysqlUser = os.Getenv("MYSQL_USER")
		mysqlPassword = os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase = os.Getenv("MYSQL_DATABASE")
	}

	if mysqlHost == "" || mysqlUser == "" || mysqlPassword == "" || mysqlDatabase == "" {
		return ""
	}
	if mysqlPort == "" {
		mysqlPort = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true&tls=custom",
		mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
}

func setDefaults(v *viper.Viper) {
	rc := report.DefaultConfig()
	v.SetDefault("report.store_name", rc.StoreName)
	v.SetDefault("report.currency", rc.Currency)
	v.SetDefault("report.timezone", rc.Timezone)
	v.SetDefault("report.top_products_limit", rc.TopProductsLimit)
	v.SetDefault("report.fetch_timeout", rc.FetchTimeout)

	dc := digest.DefaultConfig()
	v.SetDefault("digest.worker_interval", dc.WorkerInterval)
	v.SetDefault("digest.kind", dc.Kind)
	v.SetDefault("digest.archive", dc.Archive)
	v.SetDefault("digest.retention_days", dc.RetentionDays)

	rl := ratelimit.DefaultConfig()
	v.SetDefault("rate_limit.window", rl.Window)
	v.SetDefault("rate_limit.export_max", rl.ExportMax)
	v.SetDefault("rate_limit.archive_max", rl.ArchiveMax)
	v.SetDefault("rate_limit.archive_window", rl.ArchiveEvery)

	v.SetDefault("http.port", "8081")
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.jwt_secret", "HTTP_JWT_SECRET", "AUTH_JWT_SECRET")
	v.BindEnv("http.trusted_proxies", "HTTP_TRUSTED_PROXIES")

	// Report
	v.BindEnv("report.store_name", "REPORT_STORE_NAME")
	v.BindEnv("report.currency", "REPORT_CURRENCY")
	v.BindEnv("report.timezone", "REPORT_TIMEZONE")
	v.BindEnv("report.top_products_limit", "REPORT_TOP_PRODUCTS_LIMIT")
	v.BindEnv("report.fetch_timeout", "REPORT_FETCH_TIMEOUT")

	// Bucket
	v.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.subdomain_endpoint", "BUCKET_SUBDOMAIN_ENDPOINT")
	v.BindEnv("bucket.insecure", "BUCKET_INSECURE")

	// Mailer
	v.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	v.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	v.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	v.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")

	// Digest
	v.BindEnv("digest.enabled", "DIGEST_ENABLED")
	v.BindEnv("digest.worker_interval", "DIGEST_WORKER_INTERVAL")
	v.BindEnv("digest.kind", "DIGEST_KIND")
	v.BindEnv("digest.recipients", "DIGEST_RECIPIENTS")
	v.BindEnv("digest.archive", "DIGEST_ARCHIVE")
	v.BindEnv("digest.retention_days", "DIGEST_RETENTION_DAYS")

	// Rate limit
	v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	v.BindEnv("rate_limit.export_max", "RATE_LIMIT_EXPORT_MAX")
	v.BindEnv("rate_limit.archive_max", "RATE_LIMIT_ARCHIVE_MAX")
	v.BindEnv("rate_limit.archive_window", "RATE_LIMIT_ARCHIVE_WINDOW")
}
