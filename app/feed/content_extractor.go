package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
)

type ContentExtractor struct{}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Run extracts the readable body text of an article page. The page URL
// is needed by the readability algorithm to resolve relative links.
func (e *ContentExtractor) Run(data []byte, pageURL string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse article URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(data), u)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	b := &strings.Builder{}
	if err := article.RenderText(b); err != nil {
		return "", fmt.Errorf("failed to render article text: %w", err)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("no content extracted from HTML data")
	}

	slog.Debug("Content extracted successfully",
		"title", article.Title(),
		"content_length", len(text))

	return text, nil
}
