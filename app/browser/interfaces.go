package browser

import (
	"context"

	"github.com/lysyi3m/actus-navigator/app/feed"
)

// ItemSource provides pages of news items.
// Implemented by feed.Source.
type ItemSource interface {
	GetPage(ctx context.Context, page, size int) ([]feed.Item, error)
}

// ArticleReader loads the readable body text of a single article.
// Implemented by feed.Reader.
type ArticleReader interface {
	Run(ctx context.Context, url string) (string, error)
}
