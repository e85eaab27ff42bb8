package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Firebase  FirebaseConfig  `yaml:"firebase"`
	Auth      AuthConfig      `yaml:"auth"`
	Email     EmailConfig     `yaml:"email"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// FirebaseConfig points at the Firebase project backing the app
type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
	StorageBucket   string `yaml:"storage_bucket"`
}

// AuthConfig selects how bearer tokens are verified.
// Mode "firebase" verifies Firebase ID tokens against the auth provider;
// mode "local" validates HS256 tokens signed with JWTSecret (dev/test).
type AuthConfig struct {
	Mode              string `yaml:"mode"`
	JWTSecret         string `yaml:"jwt_secret"`
	TokenExpiryMinute int    `yaml:"token_expiry_minutes"`
}

// EmailConfig contains SendGrid settings. An empty API key disables sending.
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

// StorageConfig selects the photo storage backend
type StorageConfig struct {
	Type      string `yaml:"type"`       // "mock" or "firebase"
	UploadDir string `yaml:"upload_dir"` // for mock storage
	BaseURL   string `yaml:"base_url"`   // server base URL for mock URLs
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings (seconds precision, UTC)
type SchedulerConfig struct {
	Enabled                 bool   `yaml:"enabled"`
	MarkOverdueReservations string `yaml:"mark_overdue_reservations"`
	SendReturnReminders     string `yaml:"send_return_reminders"`
	SendOwnerStatements     string `yaml:"send_owner_statements"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("FIREBASE_PROJECT_ID"); val != "" {
		c.Firebase.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Firebase.CredentialsFile = val
	}
	if val := os.Getenv("FIREBASE_STORAGE_BUCKET"); val != "" {
		c.Firebase.StorageBucket = val
	}

	if val := os.Getenv("AUTH_MODE"); val != "" {
		c.Auth.Mode = val
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.FromEmail = val
	}

	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("firebase project_id is required")
	}

	switch c.Auth.Mode {
	case "":
		c.Auth.Mode = "firebase"
	case "firebase":
	case "local":
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("jwt_secret is required in local auth mode")
		}
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("jwt_secret must be at least 32 characters")
		}
	default:
		return fmt.Errorf("unknown auth mode: %s", c.Auth.Mode)
	}
	if c.Auth.TokenExpiryMinute == 0 {
		c.Auth.TokenExpiryMinute = 60
	}

	switch c.Storage.Type {
	case "":
		c.Storage.Type = "mock"
	case "mock", "firebase":
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
	if c.Storage.Type == "mock" {
		if c.Storage.UploadDir == "" {
			c.Storage.UploadDir = "./uploads"
		}
		if c.Storage.BaseURL == "" {
			c.Storage.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.MarkOverdueReservations == "" {
		c.Scheduler.MarkOverdueReservations = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.SendReturnReminders == "" {
		c.Scheduler.SendReturnReminders = "0 0 9 * * *" // 9 AM UTC
	}
	if c.Scheduler.SendOwnerStatements == "" {
		c.Scheduler.SendOwnerStatements = "0 0 6 1 * *" // 1st of month at 6 AM UTC
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
