package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/actus-navigator/app/feed"
)

// MockItemSource serves pages from a fixed set and records which pages
// were requested
type MockItemSource struct {
	pages      map[int][]feed.Item
	pageErrors map[int]error
	calls      []int
}

var _ ItemSource = (*MockItemSource)(nil)

func (m *MockItemSource) GetPage(ctx context.Context, page, size int) ([]feed.Item, error) {
	m.calls = append(m.calls, page)
	if err := m.pageErrors[page]; err != nil {
		return nil, err
	}
	return m.pages[page], nil
}

func TestExporterRun(t *testing.T) {
	source := &MockItemSource{pages: map[int][]feed.Item{
		0: {
			{Title: "Première actualité", Date: "20/08/2025", Summary: "Résumé un.", Link: "https://actus.ulb.be/fr/actu/un"},
			{Title: "Deuxième actualité", Link: "https://actus.ulb.be/fr/actu/deux"},
		},
		1: {
			{Title: "Troisième actualité", Link: "https://actus.ulb.be/fr/actu/trois"},
		},
	}}

	path := filepath.Join(t.TempDir(), "actus.html")
	exporter := NewExporter(source, 3, 10)

	err := exporter.Run(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	document := string(data)

	for _, expected := range []string{
		"Première actualité",
		"Deuxième actualité",
		"Troisième actualité",
		"https://actus.ulb.be/fr/actu/un",
		"https://actus.ulb.be/fr/actu/trois",
	} {
		if !strings.Contains(document, expected) {
			t.Errorf("Expected document to contain '%s'", expected)
		}
	}
}

func TestExporterKeepsDuplicates(t *testing.T) {
	repeated := feed.Item{Title: "Actualité répétée", Link: "https://actus.ulb.be/fr/actu/repetee"}
	source := &MockItemSource{pages: map[int][]feed.Item{
		0: {repeated},
		1: {repeated},
	}}

	path := filepath.Join(t.TempDir(), "actus.html")
	if err := NewExporter(source, 2, 10).Run(context.Background(), path); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Items are concatenated as returned, page overlap included
	if count := strings.Count(string(data), "Actualité répétée"); count < 2 {
		t.Errorf("Expected the repeated item to appear twice, got: %d", count)
	}
}

func TestExporterEmptyFirstPage(t *testing.T) {
	source := &MockItemSource{pages: map[int][]feed.Item{}}

	path := filepath.Join(t.TempDir(), "actus.html")
	err := NewExporter(source, 3, 10).Run(context.Background(), path)

	if err == nil {
		t.Fatal("Expected an error when nothing can be collected")
	}
	if !strings.Contains(err.Error(), "no news items could be retrieved") {
		t.Errorf("Unexpected error message: %v", err)
	}

	// Nothing is written on failure
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Expected no file to be created, got: %v", statErr)
	}
}

func TestExporterStopsAtEmptyPage(t *testing.T) {
	source := &MockItemSource{pages: map[int][]feed.Item{
		0: {{Title: "Seule actualité", Link: "https://actus.ulb.be/fr/actu/seule"}},
		2: {{Title: "Jamais collectée", Link: "https://actus.ulb.be/fr/actu/jamais"}},
	}}

	path := filepath.Join(t.TempDir(), "actus.html")
	if err := NewExporter(source, 3, 10).Run(context.Background(), path); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Page 1 is empty, page 2 must never be requested
	expectedCalls := []int{0, 1}
	if len(source.calls) != len(expectedCalls) {
		t.Fatalf("Expected %d page requests, got: %v", len(expectedCalls), source.calls)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Jamais collectée") {
		t.Errorf("Expected items past the empty page to be excluded")
	}
}

func TestExporterFetchErrorPropagates(t *testing.T) {
	source := &MockItemSource{
		pages:      map[int][]feed.Item{0: {{Title: "Première", Link: "https://actus.ulb.be/fr/actu/un"}}},
		pageErrors: map[int]error{1: errors.New("boom")},
	}

	path := filepath.Join(t.TempDir(), "actus.html")
	err := NewExporter(source, 3, 10).Run(context.Background(), path)

	if err == nil {
		t.Fatal("Expected the page error to propagate")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Expected no file to be created, got: %v", statErr)
	}
}

func TestExporterWriteError(t *testing.T) {
	source := &MockItemSource{pages: map[int][]feed.Item{
		0: {{Title: "Première", Link: "https://actus.ulb.be/fr/actu/un"}},
	}}

	path := filepath.Join(t.TempDir(), "absent", "actus.html")
	err := NewExporter(source, 1, 10).Run(context.Background(), path)

	if err == nil {
		t.Fatal("Expected an error for an unwritable path")
	}

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected a WriteError, got: %T", err)
	}
	if writeErr.Path != path {
		t.Errorf("Expected error to carry path '%s', got: %s", path, writeErr.Path)
	}
}

func TestExporterRejectsInvalidCounts(t *testing.T) {
	source := &MockItemSource{pages: map[int][]feed.Item{}}
	path := filepath.Join(t.TempDir(), "actus.html")

	if err := NewExporter(source, 0, 10).Run(context.Background(), path); err == nil {
		t.Error("Expected an error for zero pages")
	}
	if err := NewExporter(source, 3, 0).Run(context.Background(), path); err == nil {
		t.Error("Expected an error for a zero page size")
	}

	// Validation happens before any request
	if len(source.calls) != 0 {
		t.Errorf("Expected no page requests, got: %v", source.calls)
	}
}
