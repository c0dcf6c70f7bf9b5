package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sunilghanchi/mom-generator/pkg/config"
)

// Fixed transcription parameters. Temperature is pinned to zero so repeated
// transcriptions of the same audio are deterministic.
const (
	transcriptionPrompt      = "Specify context or spelling"
	transcriptionLanguage    = "en"
	transcriptionTemperature = "0"
)

// GroqClient is a minimal client for the Groq API covering audio
// transcription and chat completions
type GroqClient struct {
	apiKey       string
	baseURL      string
	whisperModel string
	chatModel    string
	client       *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	whisperModel := "whisper-large-v3"
	if cfg != nil && cfg.WhisperModel != "" {
		whisperModel = cfg.WhisperModel
	}

	chatModel := "llama3-8b-8192"
	if cfg != nil && cfg.ChatModel != "" {
		chatModel = cfg.ChatModel
	}

	timeout := 120 * time.Second
	if cfg != nil && cfg.RequestTimeout > 0 {
		timeout = cfg.RequestTimeout
	}

	return &GroqClient{
		apiKey:       apiKey,
		baseURL:      base,
		whisperModel: whisperModel,
		chatModel:    chatModel,
		client:       &http.Client{Timeout: timeout},
	}
}

// ChatMessage is one message in a chat completion conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Temperature float64       `json:"temperature"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// TranscriptionResponse is the json response of the transcription endpoint
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio file at audioPath to the Groq Whisper
// endpoint and returns the recognized text verbatim. Exactly one request is
// issued; there is no retry.
func (g *GroqClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"model":           g.whisperModel,
		"prompt":          transcriptionPrompt,
		"response_format": "json",
		"language":        transcriptionLanguage,
		"temperature":     transcriptionTemperature,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", err
		}
	}

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var tr TranscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return tr.Text, nil
}

// ChatCompletion sends the messages to the Groq chat endpoint and returns
// the top choice's content
func (g *GroqClient) ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64) (string, error) {
	reqBody := ChatRequest{
		Model:       g.chatModel,
		Messages:    messages,
		Temperature: temperature,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}

// readErrorBody returns a truncated error body for diagnostics
func readErrorBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
