// Package scraper converts raw HTML pages from a booru-style image
// board into typed records. Every parser takes a complete document as a
// string, performs no I/O, and substitutes defaults for anything the
// markup fails to provide. Only the loss of an element that makes the
// whole record meaningless (the stats block of a post page, the
// username heading of a profile page) yields a nil result.
package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"booruscrape/model"
)

// DefaultBaseURL resolves relative hrefs when the caller has no better
// base to offer.
const DefaultBaseURL = "https://rule34.xxx"

var (
	scorePattern  = regexp.MustCompile(`score:(\d+)`)
	ratingPattern = regexp.MustCompile(`rating:(\w+)`)
	nonDigits     = regexp.MustCompile(`[^\d]`)
)

func newDocument(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// parseThumb extracts one Post from a thumbnail container. Containers
// missing their anchor or image are reported as not-ok and skipped by
// callers rather than aborting the surrounding parse.
func parseThumb(thumb *goquery.Selection, baseURL string) (model.Post, bool) {
	anchor := thumb.Find("a").First()
	img := thumb.Find("a > img").First()
	if anchor.Length() == 0 || img.Length() == 0 {
		return model.Post{}, false
	}

	post := model.Post{
		ID:         parsePostID(anchor.AttrOr("id", "")),
		PreviewURL: img.AttrOr("src", ""),
		Tags:       strings.Fields(img.AttrOr("alt", "")),
		Score:      extractScore(img.AttrOr("title", "")),
		Rating:     extractRating(img.AttrOr("title", "")),
		DetailURL:  resolveHref(anchor.AttrOr("href", ""), baseURL),
		IsVideo:    strings.Contains(img.AttrOr("class", ""), "webm-thumb"),
	}
	return post, true
}

// parseThumbs runs parseThumb over every thumbnail container below sel,
// in document order. Shared by the listing and profile parsers.
func parseThumbs(sel *goquery.Selection, baseURL string) []model.Post {
	var posts []model.Post
	sel.Find("span.thumb").Each(func(_ int, thumb *goquery.Selection) {
		if post, ok := parseThumb(thumb, baseURL); ok {
			posts = append(posts, post)
		}
	})
	return posts
}

// parsePostID strips the single-letter prefix from a thumbnail anchor
// id like "p12345". Anything non-numeric after the prefix yields zero.
func parsePostID(rawID string) int {
	trimmed := strings.TrimPrefix(rawID, "p")
	if trimmed == "" {
		return 0
	}
	if id, err := strconv.Atoi(trimmed); err == nil && id >= 0 {
		return id
	}
	return 0
}

func extractScore(title string) int {
	if m := scorePattern.FindStringSubmatch(title); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			return score
		}
	}
	return 0
}

func extractRating(title string) model.Rating {
	if m := ratingPattern.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return model.RatingUnknown
}

// resolveHref returns href unchanged when it already carries a scheme,
// otherwise joins it onto baseURL without doubling the slash at the
// seam.
func resolveHref(href, baseURL string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(href, "/")
}

// parseCount turns count-bearing text like "123,456" or "(789)" into an
// integer by dropping every non-digit first.
func parseCount(text string) int {
	cleaned := nonDigits.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0
	}
	if count, err := strconv.Atoi(cleaned); err == nil {
		return count
	}
	return 0
}
