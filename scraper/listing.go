package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"booruscrape/model"
)

// ParsePosts extracts every thumbnail entry from a search-results page,
// in document order. Malformed entries are skipped, never fatal.
func ParsePosts(html, baseURL string) []model.Post {
	doc := newDocument(html)
	if doc == nil {
		return nil
	}
	return parseThumbs(doc.Selection, baseURL)
}

// ParseSidebarTags extracts the related-tag list shown alongside search
// results. Items without a search anchor are dropped entirely rather
// than emitted with an empty name.
func ParseSidebarTags(html string) []model.Tag {
	doc := newDocument(html)
	if doc == nil {
		return nil
	}

	sidebar := doc.Find("#tag-sidebar")
	if sidebar.Length() == 0 {
		return nil
	}

	var tags []model.Tag
	sidebar.Find("li").Each(func(_ int, li *goquery.Selection) {
		if tag, ok := parseTagItem(li); ok {
			tags = append(tags, tag)
		}
	})
	return tags
}

func parseTagItem(li *goquery.Selection) (model.Tag, bool) {
	tagType := "general"
	for _, class := range strings.Fields(li.AttrOr("class", "")) {
		if strings.HasPrefix(class, "tag-type-") {
			tagType = strings.TrimPrefix(class, "tag-type-")
			break
		}
	}

	link := li.Find(`a[href*="tags="]`).First()
	if link.Length() == 0 {
		return model.Tag{}, false
	}

	return model.Tag{
		Name:  strings.TrimSpace(link.Text()),
		Count: parseCount(li.Find("span.tag-count").First().Text()),
		Type:  tagType,
	}, true
}
