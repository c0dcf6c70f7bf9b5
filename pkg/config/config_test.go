package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.Server.Port)
	}
	if cfg.Groq.BaseURL != "https://api.groq.com" {
		t.Fatalf("unexpected default base URL %q", cfg.Groq.BaseURL)
	}
	if cfg.Groq.WhisperModel != "whisper-large-v3" {
		t.Fatalf("unexpected default whisper model %q", cfg.Groq.WhisperModel)
	}
	if cfg.Groq.ChatModel != "llama3-8b-8192" {
		t.Fatalf("unexpected default chat model %q", cfg.Groq.ChatModel)
	}
	if cfg.Groq.RequestTimeout != 120*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.Groq.RequestTimeout)
	}
	if cfg.Upload.MaxSizeMB != 25 {
		t.Fatalf("unexpected default upload cap %d", cfg.Upload.MaxSizeMB)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Fatalf("unexpected default ffmpeg binary %q", cfg.FFmpeg.Binary)
	}
	if cfg.BodyLimit() != "25M" {
		t.Fatalf("unexpected body limit %q", cfg.BodyLimit())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_API_URL", "http://localhost:9999")
	t.Setenv("UPLOAD_MAX_SIZE_MB", "50")
	t.Setenv("FFMPEG_BINARY", "/opt/ffmpeg/bin/ffmpeg")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Groq.BaseURL != "http://localhost:9999" {
		t.Fatalf("base URL override ignored: %q", cfg.Groq.BaseURL)
	}
	if cfg.Upload.MaxSizeMB != 50 || cfg.BodyLimit() != "50M" {
		t.Fatalf("upload cap override ignored: %d", cfg.Upload.MaxSizeMB)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg binary override ignored: %q", cfg.FFmpeg.Binary)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GROQ_API_KEY is unset")
	}
}
