package feed

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector sets covering the markup generations observed on the site.
const (
	titleSelectors   = "h2 a, h3 a, .card__title a, .node__title a"
	summarySelectors = "div.field--name-field-introduction, .card__summary, .node__teaser, .resume"
	dateSelectors    = "time, .card__date, .c-card__date, .date--debut"
)

type ListingParser struct {
	base *url.URL
}

func NewListingParser(baseURL string) *ListingParser {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &ListingParser{base: base}
}

// Run extracts news items from a listing page. Card shapes are tried in
// order and the first shape yielding at least one valid item wins. An
// unrecognized or empty page yields zero items, never an error:
// emptiness is the signal the caller uses to switch to the feed.
func (p *ListingParser) Run(data []byte) []Item {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	// There can be multiple view containers depending on filters. Only
	// the first one holding article cards is considered.
	var containers []*goquery.Selection
	doc.Find("div.view-content").Each(func(_ int, s *goquery.Selection) {
		containers = append(containers, s)
	})
	if len(containers) == 0 {
		containers = append(containers, doc.Selection)
	}

	for _, container := range containers {
		if items := p.parseCards(container); len(items) > 0 {
			return items
		}
	}

	if items := p.parseObjectList(doc.Selection); len(items) > 0 {
		return items
	}
	if items := p.parseLinkedItems(doc.Selection); len(items) > 0 {
		return items
	}

	return p.parseStructuredData(doc)
}

// DiscoverFeedURL returns the absolute feed URL advertised in the page
// head, or "" when the page does not advertise one.
func (p *ListingParser) DiscoverFeedURL(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	href, ok := doc.Find(`link[rel="alternate"][type="application/rss+xml"]`).First().Attr("href")
	if !ok {
		return ""
	}

	return p.resolveURL(strings.TrimSpace(href))
}

func (p *ListingParser) parseCards(container *goquery.Selection) []Item {
	var items []Item
	container.Find("article, .views-row").Each(func(_ int, node *goquery.Selection) {
		if item, ok := p.parseCard(node); ok {
			items = append(items, item)
		}
	})
	return items
}

func (p *ListingParser) parseCard(node *goquery.Selection) (Item, bool) {
	titleLink := node.Find(titleSelectors).First()
	title := collapseText(titleLink)
	href := strings.TrimSpace(titleLink.AttrOr("href", ""))
	if title == "" || href == "" {
		return Item{}, false
	}

	summary := collapseText(node.Find(summarySelectors).First())
	if summary == "" {
		summary = collapseText(node.Find("p").First())
	}

	return Item{
		Title:   title,
		Date:    collapseText(node.Find(dateSelectors).First()),
		Summary: summary,
		Link:    p.resolveURL(href),
	}, true
}

// parseObjectList handles the university portal markup, where entries
// live in ul.objets lists with lien_interne anchors.
func (p *ListingParser) parseObjectList(root *goquery.Selection) []Item {
	var items []Item
	root.Find("ul.objets li").Each(func(_ int, node *goquery.Selection) {
		titleLink := node.Find("a.lien_interne").First()
		title := collapseText(titleLink)
		href := strings.TrimSpace(titleLink.AttrOr("href", ""))
		if title == "" || href == "" {
			return
		}

		date := collapseText(node.Find(".date--debut").First())
		if date == "" {
			date = collapseText(node.Find(".date").First())
		}

		items = append(items, Item{
			Title:   title,
			Date:    date,
			Summary: collapseText(node.Find(".resume").First()),
			Link:    p.resolveURL(href),
		})
	})
	return items
}

// parseLinkedItems handles plain list items wrapping a single link.
func (p *ListingParser) parseLinkedItems(root *goquery.Selection) []Item {
	var items []Item
	root.Find("li").Each(func(_ int, node *goquery.Selection) {
		links := node.Find("a[href]")
		if links.Length() != 1 {
			return
		}

		link := links.First()
		title := collapseText(link)
		href := strings.TrimSpace(link.AttrOr("href", ""))
		if title == "" || href == "" {
			return
		}

		items = append(items, Item{
			Title:   title,
			Date:    collapseText(node.Find(dateSelectors).First()),
			Summary: collapseText(node.Find("p").First()),
			Link:    p.resolveURL(href),
		})
	})
	return items
}

type structuredArticle struct {
	Type          string `json:"@type"`
	Headline      string `json:"headline"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	DatePublished string `json:"datePublished"`
}

// parseStructuredData reads JSON-LD NewsArticle objects, the last
// resort for pages rendering their listing client-side.
func (p *ListingParser) parseStructuredData(doc *goquery.Document) []Item {
	var items []Item
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, node *goquery.Selection) {
		raw := strings.TrimSpace(node.Text())
		if raw == "" {
			return
		}

		var entries []structuredArticle
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			var single structuredArticle
			if err := json.Unmarshal([]byte(raw), &single); err != nil {
				return
			}
			entries = []structuredArticle{single}
		}

		for _, entry := range entries {
			if entry.Type != "NewsArticle" {
				continue
			}

			title := strings.TrimSpace(entry.Headline)
			href := strings.TrimSpace(entry.URL)
			if title == "" || href == "" {
				continue
			}

			items = append(items, Item{
				Title:   title,
				Date:    strings.TrimSpace(entry.DatePublished),
				Summary: strings.TrimSpace(entry.Description),
				Link:    p.resolveURL(href),
			})
		}
	})
	return items
}

func (p *ListingParser) resolveURL(href string) string {
	if p.base == nil || href == "" {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return p.base.ResolveReference(ref).String()
}

func collapseText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
