package qrcode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldbind/pkg/logger"
)

// Renderer writes QR images into a directory, one uniquely named PNG file
// per call.
type Renderer struct {
	dir     string
	quality Quality
	log     *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithQuality sets the error recovery level. Default is QualityMedium.
func WithQuality(q Quality) RendererOption {
	return func(r *Renderer) {
		if q != "" {
			r.quality = q
		}
	}
}

// WithLogger sets the logger for rendered files.
// If not specified, a discard logger is used.
func WithLogger(log *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRenderer creates dir if needed and returns a renderer writing into it.
func NewRenderer(dir string, opts ...RendererOption) (*Renderer, error) {
	if dir == "" {
		return nil, ErrEmptyOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(ErrFailedToWriteImage, err)
	}

	r := &Renderer{
		dir:     dir,
		quality: QualityMedium,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render encodes text at the given module scale and returns the path of the
// written file.
func (r *Renderer) Render(ctx context.Context, text string, scale int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	png, err := Generate(text, scale, r.quality)
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.dir, uuid.NewString()+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", errors.Join(ErrFailedToWriteImage, err)
	}

	r.log.InfoContext(ctx, "image rendered",
		logger.Component("qrcode"),
		logger.Path(path),
		slog.Int("scale", scale),
	)
	return path, nil
}
