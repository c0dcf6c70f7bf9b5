package minutes

import (
	"context"

	"go.uber.org/zap"

	"github.com/sunilghanchi/mom-generator/errors"
	"github.com/sunilghanchi/mom-generator/internal/media"
	"github.com/sunilghanchi/mom-generator/pkg/ai"
)

// Service runs the upload-to-minutes pipeline
type Service interface {
	GenerateMinutes(ctx context.Context, up media.Upload) (string, error)
}

// Normalizer stages an upload as an audio-only asset
type Normalizer interface {
	Normalize(ctx context.Context, up media.Upload) (*media.Asset, error)
}

// AIClient covers the two hosted AI calls the pipeline issues
type AIClient interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	ChatCompletion(ctx context.Context, messages []ai.ChatMessage, temperature float64) (string, error)
}

type minutesService struct {
	normalizer Normalizer
	aiClient   AIClient
	logger     *zap.Logger
}

// NewService constructs the pipeline service
func NewService(normalizer Normalizer, aiClient AIClient, logger *zap.Logger) Service {
	return &minutesService{
		normalizer: normalizer,
		aiClient:   aiClient,
		logger:     logger,
	}
}

// GenerateMinutes runs the three stages strictly in order: normalize the
// upload to audio, transcribe it, then generate the MoM document. A stage
// failure halts the pipeline; no partial result is kept. Each stage issues
// exactly one remote call.
func (s *minutesService) GenerateMinutes(ctx context.Context, up media.Upload) (string, error) {
	asset, err := s.normalizer.Normalize(ctx, up)
	if err != nil {
		return "", errors.ErrExtractionFailed(err)
	}
	// The staged audio is consumed here, so deletion responsibility sits
	// here too, on success and failure alike
	defer asset.Release()

	transcript, err := s.aiClient.Transcribe(ctx, asset.Path())
	if err != nil {
		return "", errors.ErrTranscriptionFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("transcription complete",
			zap.String("filename", up.Filename),
			zap.Int("transcript_chars", len(transcript)))
	}

	// An empty transcript is still forwarded; the chat model decides what
	// to make of it
	document, err := s.aiClient.ChatCompletion(ctx, []ai.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: transcript},
	}, chatTemperature)
	if err != nil {
		return "", errors.ErrGenerationFailed(err)
	}

	return document, nil
}
