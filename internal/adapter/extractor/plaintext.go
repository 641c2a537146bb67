package extractor

import (
	"context"
	"os"
	"strings"
)

// PlainTextHandler reads .txt, .md and .csv files as they are.
type PlainTextHandler struct{}

func (PlainTextHandler) Extract(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
