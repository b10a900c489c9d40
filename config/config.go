package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is resolved once at startup and handed to constructors; nothing
// re-reads the environment after Load.
type Config struct {
	Port string

	// Analyzer selects the food analysis backend: "mock", "remote" or
	// "rekognition". ModelBaseURL overrides the remote model endpoint.
	AnalyzerMode string
	ModelBaseURL string

	DB DBConfig

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system env")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		AnalyzerMode: getEnv("ANALYZER_MODE", "mock"),
		ModelBaseURL: os.Getenv("MODEL_BASE_URL"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
	}
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}
