package feed

import "fmt"

// FetchError reports a failed HTTP fetch, carrying the attempted URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FeedParseError reports a malformed syndication feed.
type FeedParseError struct {
	Err error
}

func (e *FeedParseError) Error() string {
	return fmt.Sprintf("failed to parse feed: %v", e.Err)
}

func (e *FeedParseError) Unwrap() error {
	return e.Err
}
