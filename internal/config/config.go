package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	GRPC      GRPC     `envPrefix:"GRPC_HEALTH_"`
	Database  Database `envPrefix:"DATABASE_"`
	JWT       JWT      `envPrefix:"JWT_"`
	OTP       OTP      `envPrefix:"OTP_"`
	Bcrypt    Bcrypt   `envPrefix:"BCRYPT_"`
	Google    Google   `envPrefix:"GOOGLE_"`
	SMTP      SMTP     `envPrefix:"SMTP_"`
	Storage   Storage  `envPrefix:"MINIO_"`
}

// HTTP contains REST server parameters.
type HTTP struct {
	Port               string   `env:"PORT" envDefault:"5000"`
	EnableHTTPS        bool     `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string   `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string   `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	CORSOrigins        []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// GRPC contains health server parameters.
type GRPC struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Port     string        `env:"PORT" envDefault:"50051"`
	Interval time.Duration `env:"INTERVAL" envDefault:"15s"`
}

// Database contains database connection parameters. The DSN scheme selects
// the backend: mongodb, mongodb+srv, postgres, postgresql or memory.
type Database struct {
	DSN string `env:"DSN" envDefault:"mongodb://localhost:27017/note-taking-app"`
}

// JWT contains JWT-related parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"devsecret"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
}

// OTP contains one-time code parameters.
type OTP struct {
	TTL time.Duration `env:"TTL" envDefault:"10m"`
}

// Bcrypt contains password hashing parameters.
type Bcrypt struct {
	Cost int `env:"COST" envDefault:"10"`
}

// Google contains Google Sign-In parameters.
type Google struct {
	ClientID string `env:"CLIENT_ID"`
}

// SMTP contains mail delivery parameters. An empty Host selects the log mailer.
type SMTP struct {
	Host     string        `env:"HOST"`
	Port     int           `env:"PORT" envDefault:"587"`
	User     string        `env:"USER"`
	Password string        `env:"PASS"`
	From     string        `env:"FROM"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Storage contains object storage parameters for note exports.
type Storage struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"notes-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"notes-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"notes-exports"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
