package browser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lysyi3m/actus-navigator/app/feed"
)

const wrapWidth = 80

// Browser runs the interactive read-eval loop over listing pages. It
// keeps the current page cached so moving between the listing and an
// article detail never refetches.
type Browser struct {
	source   ItemSource
	reader   ArticleReader
	scanner  *bufio.Scanner
	output   io.Writer
	pageSize int

	page  int
	items []feed.Item
}

func NewBrowser(source ItemSource, reader ArticleReader, input io.Reader, output io.Writer, pageSize int) *Browser {
	return &Browser{
		source:   source,
		reader:   reader,
		scanner:  bufio.NewScanner(input),
		output:   output,
		pageSize: pageSize,
	}
}

// Run starts the session. It returns an error only when the initial
// page cannot be loaded; later failures are reported inline and the
// session continues. End of input quits like Q does.
func (b *Browser) Run(ctx context.Context) error {
	items, err := b.source.GetPage(ctx, 0, b.pageSize)
	if err != nil {
		return fmt.Errorf("failed to load the news listing: %w", err)
	}
	b.items = items

	fmt.Fprintln(b.output, "University news browser. Pick an item number to read it.")

	for {
		b.printListing()

		input, ok := b.readLine("\nYour choice (number, N, P, Q): ")
		if !ok {
			fmt.Fprintln(b.output, "\nGoodbye.")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if selection, err := strconv.Atoi(input); err == nil {
			if quit := b.showDetail(ctx, selection-1); quit {
				fmt.Fprintln(b.output, "\nGoodbye.")
				return nil
			}
			continue
		}

		switch strings.ToUpper(input) {
		case "N":
			b.nextPage(ctx)
		case "P":
			b.previousPage(ctx)
		case "Q":
			fmt.Fprintln(b.output, "\nGoodbye.")
			return nil
		default:
			fmt.Fprintln(b.output, "Unknown command.")
		}
	}
}

func (b *Browser) printListing() {
	separator := strings.Repeat("=", wrapWidth)
	fmt.Fprintln(b.output)
	fmt.Fprintln(b.output, separator)
	fmt.Fprintf(b.output, "Page %d\n", b.page+1)
	fmt.Fprintln(b.output, separator)

	if len(b.items) == 0 {
		fmt.Fprintln(b.output, "No news found.")
		return
	}

	for i, item := range b.items {
		fmt.Fprintln(b.output, wrap(fmt.Sprintf("[%d] %s", i+1, item.Title), wrapWidth))
		if item.Date != "" {
			fmt.Fprintln(b.output, wrap("Date: "+item.Date, wrapWidth))
		}
		if item.Summary != "" {
			fmt.Fprintln(b.output, wrap(item.Summary, wrapWidth))
		}
		fmt.Fprintln(b.output, wrap("Link: "+item.Link, wrapWidth))
		fmt.Fprintln(b.output, strings.Repeat("-", wrapWidth))
	}

	fmt.Fprintln(b.output, "Commands: item number to read, N next page, P previous page, Q quit.")
}

// nextPage probes the following page and advances only when it has
// items, so N on the last page leaves the session where it is.
func (b *Browser) nextPage(ctx context.Context) {
	items, err := b.source.GetPage(ctx, b.page+1, b.pageSize)
	if err != nil {
		fmt.Fprintf(b.output, "Failed to load the next page: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(b.output, "No more news available.")
		return
	}

	b.page++
	b.items = items
}

func (b *Browser) previousPage(ctx context.Context) {
	if b.page == 0 {
		return
	}

	items, err := b.source.GetPage(ctx, b.page-1, b.pageSize)
	if err != nil {
		fmt.Fprintf(b.output, "Failed to load the previous page: %v\n", err)
		return
	}

	b.page--
	b.items = items
}

// showDetail prints one item in full, fetching the article body on the
// fly. The reported bool is true when the user quits from the detail
// view instead of returning to the listing.
func (b *Browser) showDetail(ctx context.Context, index int) bool {
	if index < 0 || index >= len(b.items) {
		fmt.Fprintln(b.output, "Invalid selection.")
		return false
	}

	item := b.items[index]
	fmt.Fprintln(b.output)
	fmt.Fprintln(b.output, wrap(item.Title, wrapWidth))
	if item.Date != "" {
		fmt.Fprintln(b.output, wrap("Date: "+item.Date, wrapWidth))
	}
	fmt.Fprintln(b.output, item.Link)

	body, err := b.reader.Run(ctx, item.Link)
	if err != nil {
		fmt.Fprintf(b.output, "Failed to load the full article: %v\n", err)
		if item.Summary != "" {
			fmt.Fprintln(b.output, wrap(item.Summary, wrapWidth))
		}
	} else {
		for _, paragraph := range strings.Split(body, "\n\n") {
			fmt.Fprintln(b.output)
			fmt.Fprintln(b.output, wrap(paragraph, wrapWidth))
		}
	}

	input, ok := b.readLine("\nPress Enter to return to the list, Q to quit: ")
	if !ok {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(input), "Q")
}

func (b *Browser) readLine(prompt string) (string, bool) {
	fmt.Fprint(b.output, prompt)
	if !b.scanner.Scan() {
		return "", false
	}
	return b.scanner.Text(), true
}

// wrap reflows text to the given width, keeping words intact.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}
