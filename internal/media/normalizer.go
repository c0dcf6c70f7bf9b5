package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sunilghanchi/mom-generator/pkg/config"
	"github.com/sunilghanchi/mom-generator/pkg/executor"
)

// Kind is the declared kind of an uploaded recording
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".avi":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".wmv":  true,
	".flv":  true,
}

// KindFromFilename infers the media kind from the filename extension.
// Anything that is not a known video container is treated as audio.
func KindFromFilename(name string) Kind {
	if videoExtensions[strings.ToLower(filepath.Ext(name))] {
		return KindVideo
	}
	return KindAudio
}

// Upload is one user-submitted recording: raw bytes plus the declared kind
// and the original filename
type Upload struct {
	Reader   io.Reader
	Kind     Kind
	Filename string
}

// Normalizer turns an uploaded recording into a staged audio-only Asset.
// Audio uploads pass through unchanged; video uploads go through ffmpeg
// audio extraction.
type Normalizer struct {
	exec    executor.Executor
	binary  string
	tempDir string
	logger  *zap.Logger
}

// NewNormalizer creates a Normalizer. An empty tempDir falls back to the
// system temp directory.
func NewNormalizer(cfg *config.Config, exec executor.Executor, logger *zap.Logger) *Normalizer {
	binary := "ffmpeg"
	tempDir := os.TempDir()
	if cfg != nil {
		if cfg.FFmpeg.Binary != "" {
			binary = cfg.FFmpeg.Binary
		}
		if cfg.Upload.TempDir != "" {
			tempDir = cfg.Upload.TempDir
		}
	}
	return &Normalizer{
		exec:    exec,
		binary:  binary,
		tempDir: tempDir,
		logger:  logger,
	}
}

// Normalize stages the upload and returns an audio Asset. The returned
// asset is owned by the caller, who must Release it on every exit path.
func (n *Normalizer) Normalize(ctx context.Context, up Upload) (*Asset, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	if ext == "" {
		ext = ".bin"
	}

	stagedPath, err := n.stage(up.Reader, ext)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	if up.Kind != KindVideo {
		// Pass-through: the staged bytes are already an audio stream
		return NewAsset(stagedPath, ext), nil
	}

	// The staged video is released right after extraction, success or not
	defer os.Remove(stagedPath)

	audioPath, err := n.extractAudio(ctx, stagedPath)
	if err != nil {
		return nil, err
	}
	return NewAsset(audioPath, ".wav"), nil
}

// stage copies the upload into a uniquely named file under the temp dir
func (n *Normalizer) stage(r io.Reader, ext string) (string, error) {
	path := filepath.Join(n.tempDir, "upload-"+uuid.NewString()+ext)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// extractAudio extracts the audio track from a video file into 16kHz mono
// WAV, the format Whisper handles best
func (n *Normalizer) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := filepath.Join(n.tempDir, "audio-"+uuid.NewString()+".wav")

	if n.logger != nil {
		n.logger.Info("extracting audio track",
			zap.String("video", videoPath),
			zap.String("audio", audioPath))
	}

	// -vn drops the video stream, -ar/-ac downmix to 16kHz mono,
	// pcm_s16le keeps the audio uncompressed
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := n.exec.Execute(ctx, n.binary, args...); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}
