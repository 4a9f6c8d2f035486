package feed

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

type FeedParser struct {
	gofeedParser *gofeed.Parser
	base         *url.URL
}

func NewFeedParser(baseURL string) *FeedParser {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &FeedParser{
		gofeedParser: gofeed.NewParser(),
		base:         base,
	}
}

// Run parses a syndication feed into news items. Entries without a
// title or link are dropped, the rest of the sequence is preserved.
func (p *FeedParser) Run(data []byte) ([]Item, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &FeedParseError{Err: err}
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item := p.normalizeItem(entry)
		if item.Title == "" || item.Link == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *FeedParser) normalizeItem(entry *gofeed.Item) Item {
	item := Item{
		Title:   strings.TrimSpace(entry.Title),
		Date:    strings.TrimSpace(entry.Published),
		Summary: stripMarkup(entry.Description),
		Link:    p.resolveURL(strings.TrimSpace(entry.Link)),
	}

	// Some feed generations publish only a Dublin Core date.
	if item.Date == "" && entry.DublinCoreExt != nil && len(entry.DublinCoreExt.Date) > 0 {
		item.Date = strings.TrimSpace(entry.DublinCoreExt.Date[0])
	}

	return item
}

func (p *FeedParser) resolveURL(href string) string {
	if p.base == nil || href == "" {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return p.base.ResolveReference(ref).String()
}

// stripMarkup flattens an HTML description into plain text.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
