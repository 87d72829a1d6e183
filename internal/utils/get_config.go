package utils

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigFile = "config.yaml"

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	AppURL           string `yaml:"APP_URL"`
	LogFile          string `yaml:"LOG_FILE"`
	RateLimitMax     string `yaml:"RATE_LIMIT_MAX"`
	MaxUploadMB      string `yaml:"MAX_UPLOAD_MB"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT configuration
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTTTLMinutes string `yaml:"JWT_TTL_MINUTES"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Media storage configuration
	StorageDriver string `yaml:"STORAGE_DRIVER"`
	MediaRoot     string `yaml:"MEDIA_ROOT"`
	MediaURL      string `yaml:"MEDIA_URL"`
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:          "8000",
		LogFile:          "./logs/app.log",
		RateLimitMax:     "10",
		MaxUploadMB:      "4",
		CORSAllowOrigins: "*",
		DBDriver:         "postgres",
		DBPort:           "5432",
		DBSSLMode:        "disable",
		DBTimeZone:       "UTC",
		JWTTTLMinutes:    "120",
		StorageDriver:    "local",
		MediaRoot:        "./media",
		MediaURL:         "/media/",
	}
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"LOG_FILE":           &c.LogFile,
		"RATE_LIMIT_MAX":     &c.RateLimitMax,
		"MAX_UPLOAD_MB":      &c.MaxUploadMB,
		"CORS_ALLOW_ORIGINS": &c.CORSAllowOrigins,
		"DB_DRIVER":          &c.DBDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_SSLMODE":         &c.DBSSLMode,
		"DB_TIMEZONE":        &c.DBTimeZone,
		"JWT_SECRET":         &c.JWTSecret,
		"JWT_TTL_MINUTES":    &c.JWTTTLMinutes,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"STORAGE_DRIVER":     &c.StorageDriver,
		"MEDIA_ROOT":         &c.MediaRoot,
		"MEDIA_URL":          &c.MediaURL,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
}

// LoadConfig reads .env and config.yaml from the working directory.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error reading .env file: %s\n", err)
	}
	if err := LoadConfigFile(DefaultConfigFile); err != nil {
		log.Printf("Error loading config: %s\n", err)
	}
}

// LoadConfigFile resets the configuration to its defaults, applies the YAML
// file at path when it exists and lets environment variables win over both.
func LoadConfigFile(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	for key, field := range cfg.fields() {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}

	config = cfg
	return nil
}

func GetConfig(key string) string {
	if field, ok := config.fields()[key]; ok {
		return *field
	}
	return ""
}

func GetConfigInt(key string, fallback int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return v
}
