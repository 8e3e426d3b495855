package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               string   `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		Timezone           string   `mapstructure:"timezone"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSL      bool   `mapstructure:"ssl"`
		MaxConns int    `mapstructure:"max_conns"`
	} `mapstructure:"database"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
	} `mapstructure:"jwt"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Storage struct {
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		Bucket    string `mapstructure:"bucket"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		PublicURL string `mapstructure:"public_url"`
		UploadDir string `mapstructure:"upload_dir"`
	} `mapstructure:"storage"`

	Payments struct {
		MercadoPagoToken   string  `mapstructure:"mercadopago_access_token"`
		PixDiscountPercent float64 `mapstructure:"pix_discount_percent"`
	} `mapstructure:"payments"`

	Business struct {
		DefaultCommissionPercent float64 `mapstructure:"default_commission_percent"`
	} `mapstructure:"business"`
}

// env key -> viper key
var envBindings = map[string]string{
	"server.port":                         "SERVER_PORT",
	"server.cors_allowed_origins":         "CORS_ALLOWED_ORIGINS",
	"server.timezone":                     "APP_TIMEZONE",
	"database.host":                       "DB_HOST",
	"database.port":                       "DB_PORT",
	"database.user":                       "DB_USER",
	"database.password":                   "DB_PASSWORD",
	"database.name":                       "DB_NAME",
	"database.ssl":                        "DB_SSL",
	"database.max_conns":                  "DB_MAX_CONNS",
	"jwt.secret":                          "JWT_SECRET",
	"jwt.expiration_hours":                "JWT_EXPIRATION_HOURS",
	"redis.addr":                          "REDIS_ADDR",
	"redis.password":                      "REDIS_PASSWORD",
	"redis.db":                            "REDIS_DB",
	"storage.endpoint":                    "S3_ENDPOINT",
	"storage.region":                      "S3_REGION",
	"storage.bucket":                      "S3_BUCKET",
	"storage.access_key":                  "S3_ACCESS_KEY",
	"storage.secret_key":                  "S3_SECRET_KEY",
	"storage.public_url":                  "S3_PUBLIC_URL",
	"storage.upload_dir":                  "UPLOAD_DIR",
	"payments.mercadopago_access_token":   "MERCADOPAGO_ACCESS_TOKEN",
	"payments.pix_discount_percent":       "PIX_DISCOUNT_PERCENT",
	"business.default_commission_percent": "DEFAULT_COMMISSION_PERCENT",
}

func Load() *Config {
	// .env is optional in production
	_ = godotenv.Load()

	cfg, err := load(viper.New(), "configs/config.yaml")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	return cfg
}

func load(v *viper.Viper, file string) (*Config, error) {
	v.SetConfigType("yaml")
	v.SetConfigFile(file)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "America/Sao_Paulo")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "essentia")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("jwt.secret", "changeme")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("storage.region", "auto")
	v.SetDefault("storage.upload_dir", "public/uploads")
	v.SetDefault("payments.pix_discount_percent", 5)
	v.SetDefault("business.default_commission_percent", 30)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	// CORS_ALLOWED_ORIGINS arrives as a single comma separated string
	cfg.Server.CorsAllowedOrigins = splitList(cfg.Server.CorsAllowedOrigins)

	return &cfg, nil
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func (c *Config) PostgresDSN() string {
	sslmode := "disable"
	if c.Database.SSL {
		sslmode = "require"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     c.Database.Name,
		RawQuery: "sslmode=" + sslmode,
	}
	return u.String()
}

func (c *Config) StorageEnabled() bool {
	return c.Storage.Bucket != "" && c.Storage.AccessKey != ""
}
