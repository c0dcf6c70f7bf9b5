package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Groq   GroqConfig
	Upload UploadConfig
	FFmpeg FFmpegConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey         string        `envconfig:"GROQ_API_KEY"`
	BaseURL        string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	WhisperModel   string        `envconfig:"GROQ_WHISPER_MODEL" default:"whisper-large-v3"`
	ChatModel      string        `envconfig:"GROQ_CHAT_MODEL" default:"llama3-8b-8192"`
	RequestTimeout time.Duration `envconfig:"GROQ_REQUEST_TIMEOUT" default:"120s"`
}

// UploadConfig holds upload handling configuration
type UploadConfig struct {
	MaxSizeMB int    `envconfig:"UPLOAD_MAX_SIZE_MB" default:"25"`
	TempDir   string `envconfig:"UPLOAD_TEMP_DIR" default:""`
}

// FFmpegConfig holds media extraction configuration
type FFmpegConfig struct {
	Binary string `envconfig:"FFMPEG_BINARY" default:"ffmpeg"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_MB must be positive")
	}
	return nil
}

// BodyLimit returns the upload size cap in Echo middleware notation
func (c *Config) BodyLimit() string {
	return fmt.Sprintf("%dM", c.Upload.MaxSizeMB)
}
