package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quiz-forge/internal/domain"
)

// ErrOutsideUploadDir is returned for paths that resolve outside the upload directory.
var ErrOutsideUploadDir = errors.New("extractor: path escapes upload directory")

// FormatHandler pulls plain text out of one document format.
type FormatHandler interface {
	Extract(ctx context.Context, path string) (string, error)
}

// HandlerFunc adapts a function to FormatHandler.
type HandlerFunc func(ctx context.Context, path string) (string, error)

func (f HandlerFunc) Extract(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// Registry dispatches on file extension. It never fails outward: anything that
// goes wrong is logged and yields "".
type Registry struct {
	uploadDir string
	handlers  map[string]FormatHandler
	logger    *zap.Logger
}

var _ domain.TextExtractor = (*Registry)(nil)

// NewRegistry creates an empty registry rooted at uploadDir.
func NewRegistry(uploadDir string, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		uploadDir: uploadDir,
		handlers:  make(map[string]FormatHandler),
		logger:    logger,
	}
}

// NewDefaultRegistry registers the plain text, PDF and DOCX handlers.
func NewDefaultRegistry(uploadDir string, logger *zap.Logger) *Registry {
	r := NewRegistry(uploadDir, logger)
	plain := PlainTextHandler{}
	for _, ext := range []string{".txt", ".md", ".csv"} {
		r.Register(ext, plain)
	}
	r.Register(".pdf", NewPDFHandler(DefaultPDFTimeout))
	r.Register(".docx", DocxHandler{})
	return r
}

// Register binds a handler to an extension such as ".pdf". Matching ignores case.
func (r *Registry) Register(ext string, h FormatHandler) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.handlers[ext] = h
}

// Supports reports whether a handler exists for the path's extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.handlers[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Resolve maps a stored attachment path onto the local filesystem. Relative
// paths are joined to the upload directory; absolute and relative paths alike
// must end up inside it. A registry without an upload directory accepts any
// path.
func (r *Registry) Resolve(path string) (string, error) {
	if r.uploadDir == "" {
		return filepath.Clean(path), nil
	}

	base, err := filepath.Abs(r.uploadDir)
	if err != nil {
		return "", err
	}
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(base, resolved)
	}
	resolved = filepath.Clean(resolved)

	rel, err := filepath.Rel(base, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideUploadDir
	}
	return resolved, nil
}

// ExtractText implements domain.TextExtractor.
func (r *Registry) ExtractText(ctx context.Context, path string) string {
	log := r.logger.With(zap.String("path", path))

	resolved, err := r.Resolve(path)
	if err != nil {
		log.Warn("Rejected attachment path", zap.Error(err))
		return ""
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		log.Warn("Attachment not found", zap.String("resolved", resolved), zap.Error(err))
		return ""
	}

	ext := strings.ToLower(filepath.Ext(resolved))
	h, ok := r.handlers[ext]
	if !ok {
		log.Info("Unsupported attachment format", zap.String("extension", ext))
		return ""
	}

	text, err := h.Extract(ctx, resolved)
	if err != nil {
		log.Warn("Failed to extract attachment text", zap.String("extension", ext), zap.Error(err))
		return ""
	}
	return text
}
