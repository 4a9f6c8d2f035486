package feed

import (
	"context"
	"log/slog"
)

// Source exposes pages of news items. The listing page is the primary
// source; the site's feed is consulted only when a successfully fetched
// listing parses to zero items. A failed fetch always propagates, it
// never triggers the fallback.
type Source struct {
	config        *Config
	fetcher       *Fetcher
	listingParser *ListingParser
	feedParser    *FeedParser
}

func NewSource(config *Config, fetcher *Fetcher) *Source {
	return &Source{
		config:        config,
		fetcher:       fetcher,
		listingParser: NewListingParser(config.BaseURL),
		feedParser:    NewFeedParser(config.BaseURL),
	}
}

// GetPage returns at most size items for the zero-based page index.
func (s *Source) GetPage(ctx context.Context, page, size int) ([]Item, error) {
	data, err := s.fetcher.Run(ctx, s.config.ListingURL(page))
	if err != nil {
		return nil, err
	}

	items := s.listingParser.Run(data)
	if len(items) > 0 {
		if len(items) > size {
			items = items[:size]
		}
		slog.Debug("Listing page parsed", "page", page, "items", len(items))
		return items, nil
	}

	slog.Debug("Listing page yielded no items, falling back to feed", "page", page)
	return s.feedPage(ctx, data, page, size)
}

// feedPage fetches the fallback feed once and paginates it manually,
// the feed itself has no paging.
func (s *Source) feedPage(ctx context.Context, listingData []byte, page, size int) ([]Item, error) {
	feedURL := s.listingParser.DiscoverFeedURL(listingData)
	if feedURL == "" {
		feedURL = s.config.FeedURL
	}

	data, err := s.fetcher.Run(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	items, err := s.feedParser.Run(data)
	if err != nil {
		return nil, err
	}

	offset := page * size
	if offset >= len(items) {
		return nil, nil
	}

	return items[offset:min(offset+size, len(items))], nil
}
