package feed

import "context"

// Reader fetches an article page and extracts its readable body text.
type Reader struct {
	fetcher   *Fetcher
	extractor *ContentExtractor
}

func NewReader(fetcher *Fetcher) *Reader {
	return &Reader{
		fetcher:   fetcher,
		extractor: NewContentExtractor(),
	}
}

func (r *Reader) Run(ctx context.Context, url string) (string, error) {
	data, err := r.fetcher.Run(ctx, url)
	if err != nil {
		return "", err
	}

	return r.extractor.Run(data, url)
}
