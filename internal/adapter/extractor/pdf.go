package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

const DefaultPDFTimeout = 30 * time.Second

// PDFHandler reads the text layer with ledongthuc/pdf. When that yields
// nothing and Fallback names a binary on PATH (poppler's pdftotext), the
// binary gets a second try.
type PDFHandler struct {
	Fallback string
	Timeout  time.Duration
}

func NewPDFHandler(timeout time.Duration) *PDFHandler {
	return &PDFHandler{Fallback: "pdftotext", Timeout: timeout}
}

func (h *PDFHandler) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := readPDFText(path)
	if err != nil {
		return "", err
	}
	if text != "" || h.Fallback == "" {
		return text, nil
	}
	if _, lookErr := exec.LookPath(h.Fallback); lookErr != nil {
		return "", nil
	}
	return h.runFallback(ctx, path)
}

// readPDFText turns parser panics on malformed files into errors.
func readPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (h *PDFHandler) runFallback(ctx context.Context, path string) (string, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, h.Fallback, "-enc", "UTF-8", "-q", path, "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if s := strings.TrimSpace(stderr.String()); s != "" {
			return "", fmt.Errorf("%s: %w; stderr=%s", h.Fallback, err, s)
		}
		return "", fmt.Errorf("%s: %w", h.Fallback, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
