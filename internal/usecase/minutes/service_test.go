package minutes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stdErrors "errors"

	apperrors "github.com/sunilghanchi/mom-generator/errors"
	"github.com/sunilghanchi/mom-generator/internal/media"
	"github.com/sunilghanchi/mom-generator/pkg/ai"
)

type fakeNormalizer struct {
	asset *media.Asset
	err   error
	calls int
}

func (f *fakeNormalizer) Normalize(ctx context.Context, up media.Upload) (*media.Asset, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.asset, nil
}

type fakeAIClient struct {
	transcript      string
	transcribeErr   error
	document        string
	chatErr         error
	transcribeCalls int
	chatCalls       int
	chatMessages    []ai.ChatMessage
	chatTemperature float64
}

func (f *fakeAIClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f.transcribeCalls++
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	return f.transcript, nil
}

func (f *fakeAIClient) ChatCompletion(ctx context.Context, messages []ai.ChatMessage, temperature float64) (string, error) {
	f.chatCalls++
	f.chatMessages = messages
	f.chatTemperature = temperature
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.document, nil
}

func stagedAsset(t *testing.T) *media.Asset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staged.wav")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write staged asset: %v", err)
	}
	return media.NewAsset(path, ".wav")
}

func TestGenerateMinutes_Success(t *testing.T) {
	asset := stagedAsset(t)
	norm := &fakeNormalizer{asset: asset}
	aiClient := &fakeAIClient{
		transcript: "let's discuss the budget",
		document:   "### Minutes of Meeting (MoM):\n\n### Tasks:\n- review budget",
	}
	svc := NewService(norm, aiClient, nil)

	doc, err := svc.GenerateMinutes(context.Background(), media.Upload{Filename: "standup.wav", Kind: media.KindAudio})
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if doc != aiClient.document {
		t.Fatalf("document not returned verbatim: %q", doc)
	}
	if norm.calls != 1 || aiClient.transcribeCalls != 1 || aiClient.chatCalls != 1 {
		t.Fatalf("expected one call per stage, got %d/%d/%d",
			norm.calls, aiClient.transcribeCalls, aiClient.chatCalls)
	}

	// Two messages: the fixed instruction and the transcript verbatim
	if len(aiClient.chatMessages) != 2 {
		t.Fatalf("expected 2 chat messages, got %d", len(aiClient.chatMessages))
	}
	if aiClient.chatMessages[0].Role != "system" || aiClient.chatMessages[0].Content != systemPrompt {
		t.Fatal("system message must carry the fixed MoM template")
	}
	if aiClient.chatMessages[1].Role != "user" || aiClient.chatMessages[1].Content != "let's discuss the budget" {
		t.Fatalf("user message must carry the transcript verbatim: %+v", aiClient.chatMessages[1])
	}
	if aiClient.chatTemperature != 0.7 {
		t.Fatalf("unexpected chat temperature %v", aiClient.chatTemperature)
	}
	if !strings.Contains(aiClient.chatMessages[0].Content, "### Meeting Notes/Tasks:") {
		t.Fatal("template must request the notes/tasks section")
	}

	// The staged audio is released after consumption
	if _, err := os.Stat(asset.Path()); !os.IsNotExist(err) {
		t.Fatal("audio asset not released on success path")
	}
}

func TestGenerateMinutes_ExtractionFailureHaltsPipeline(t *testing.T) {
	norm := &fakeNormalizer{err: fmt.Errorf("no audio stream")}
	aiClient := &fakeAIClient{}
	svc := NewService(norm, aiClient, nil)

	_, err := svc.GenerateMinutes(context.Background(), media.Upload{Filename: "silent.mp4", Kind: media.KindVideo})
	if err == nil {
		t.Fatal("expected extraction failure")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_EXTRACTION_FAILED {
		t.Fatalf("expected EXTRACTION_FAILED, got %v", err)
	}
	if aiClient.transcribeCalls != 0 {
		t.Fatal("transcription must not run after extraction failure")
	}
	if aiClient.chatCalls != 0 {
		t.Fatal("generation must not run after extraction failure")
	}
}

func TestGenerateMinutes_TranscriptionFailureHaltsPipeline(t *testing.T) {
	asset := stagedAsset(t)
	norm := &fakeNormalizer{asset: asset}
	aiClient := &fakeAIClient{transcribeErr: fmt.Errorf("groq returned status 401: invalid api key")}
	svc := NewService(norm, aiClient, nil)

	_, err := svc.GenerateMinutes(context.Background(), media.Upload{Filename: "standup.wav", Kind: media.KindAudio})
	if err == nil {
		t.Fatal("expected transcription failure")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_TRANSCRIPTION_FAILED {
		t.Fatalf("expected TRANSCRIPTION_FAILED, got %v", err)
	}
	if aiClient.chatCalls != 0 {
		t.Fatal("generation must not run after transcription failure")
	}

	// Release happens on the failure path too
	if _, err := os.Stat(asset.Path()); !os.IsNotExist(err) {
		t.Fatal("audio asset not released on failure path")
	}
}

func TestGenerateMinutes_GenerationFailure(t *testing.T) {
	norm := &fakeNormalizer{asset: stagedAsset(t)}
	aiClient := &fakeAIClient{
		transcript: "some discussion",
		chatErr:    fmt.Errorf("groq returned status 429: rate limit"),
	}
	svc := NewService(norm, aiClient, nil)

	_, err := svc.GenerateMinutes(context.Background(), media.Upload{Filename: "standup.wav", Kind: media.KindAudio})
	if err == nil {
		t.Fatal("expected generation failure")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_GENERATION_FAILED {
		t.Fatalf("expected GENERATION_FAILED, got %v", err)
	}
}

func TestGenerateMinutes_EmptyTranscriptStillGenerates(t *testing.T) {
	norm := &fakeNormalizer{asset: stagedAsset(t)}
	aiClient := &fakeAIClient{transcript: "", document: "### Minutes of Meeting (MoM):"}
	svc := NewService(norm, aiClient, nil)

	doc, err := svc.GenerateMinutes(context.Background(), media.Upload{Filename: "quiet.wav", Kind: media.KindAudio})
	if err != nil {
		t.Fatalf("empty transcript must not fail the pipeline: %v", err)
	}
	if aiClient.chatCalls != 1 {
		t.Fatal("chat request must still be issued for an empty transcript")
	}
	if aiClient.chatMessages[1].Content != "" {
		t.Fatalf("empty transcript must be forwarded unchanged, got %q", aiClient.chatMessages[1].Content)
	}
	if doc == "" {
		t.Fatal("expected generated document")
	}
}
