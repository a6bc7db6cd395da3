package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	// MediaRoot is the base directory for uploaded curriculum files and
	// the enrollment spreadsheet.
	MediaRoot string

	EmailSender string
	Password    string // SMTP app password
	SMTPHost    string
	SMTPPort    string

	// OpsEmail receives the internal enrollment alert.
	OpsEmail string

	// EnrollmentWebhookURL is the external sheet webhook; empty disables the channel.
	EnrollmentWebhookURL     string
	EnrollmentWebhookTimeout int // seconds

	// CurriculumAuditCron is the schedule for the storage drift audit.
	CurriculumAuditCron string
}

// Load initializes configuration from environment variables or defaults.
// The returned Config is passed explicitly to every layer that needs it.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:   getEnv("PORT", "8000"),
		DBHost: getEnv("DB_HOST", "localhost"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASSWORD", ""),
		DBName: getEnv("DB_NAME", "bigclasses"),
		DBPort: getEnv("DB_PORT", "5432"),

		MediaRoot: getEnv("MEDIA_ROOT", "media"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),

		OpsEmail: getEnv("OPS_EMAIL", ""),

		EnrollmentWebhookURL:     getEnv("ENROLLMENT_WEBHOOK_URL", ""),
		EnrollmentWebhookTimeout: getEnvInt("ENROLLMENT_WEBHOOK_TIMEOUT", 10),

		CurriculumAuditCron: getEnv("CURRICULUM_AUDIT_CRON", "0 * * * *"),
	}

	if cfg.EmailSender == "" {
		log.Println("Warning: EMAIL_SENDER not set. Enrollment emails will be skipped.")
	}
	if cfg.EnrollmentWebhookURL == "" {
		log.Println("Warning: ENROLLMENT_WEBHOOK_URL not set. Webhook forwarding disabled.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
