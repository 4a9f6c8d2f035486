package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/actus-navigator/app/feed"
)

// ItemSource yields one page of news items at a time.
// Implemented by feed.Source.
type ItemSource interface {
	GetPage(ctx context.Context, page int, size int) ([]feed.Item, error)
}

// WriteError reports a failure to materialize the HTML document on disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Exporter collects a fixed number of listing pages and renders them
// into a single HTML file.
type Exporter struct {
	source    ItemSource
	generator *Generator
	pages     int
	pageSize  int
}

func NewExporter(source ItemSource, pages int, pageSize int) *Exporter {
	return &Exporter{
		source:    source,
		generator: NewGenerator(""),
		pages:     pages,
		pageSize:  pageSize,
	}
}

func (e *Exporter) Run(ctx context.Context, path string) error {
	if e.pages <= 0 {
		return fmt.Errorf("pages must be positive, got %d", e.pages)
	}

	if e.pageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", e.pageSize)
	}

	items, err := e.collect(ctx)
	if err != nil {
		return err
	}

	document := e.generator.Run(items)

	if err := e.write(path, document); err != nil {
		return err
	}

	slog.Info("Export completed", "path", path, "items", len(items), "pages", e.pages)

	return nil
}

// collect walks pages in order and concatenates their items as
// returned, duplicates included. An empty page means the source is
// exhausted, so later pages are not requested.
func (e *Exporter) collect(ctx context.Context) ([]feed.Item, error) {
	var items []feed.Item

	for page := 0; page < e.pages; page++ {
		pageItems, err := e.source.GetPage(ctx, page, e.pageSize)
		if err != nil {
			return nil, err
		}

		if len(pageItems) == 0 {
			if page == 0 {
				return nil, fmt.Errorf("no news items could be retrieved")
			}

			break
		}

		items = append(items, pageItems...)
	}

	return items, nil
}

func (e *Exporter) write(path string, document string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := f.WriteString(document); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
