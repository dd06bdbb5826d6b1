package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"booruscrape/model"
)

var (
	imageObjectPattern = regexp.MustCompile(`image\s*=\s*(\{[^}]+\})`)
	widthPattern       = regexp.MustCompile(`['"]?width['"]?\s*:\s*(\d+)`)
	heightPattern      = regexp.MustCompile(`['"]?height['"]?\s*:\s*(\d+)`)
	statsIDPattern     = regexp.MustCompile(`Id:\s*(\d+)`)
	postedPattern      = regexp.MustCompile(`Posted:\s*(.*?)\s*by`)
)

// ParsePostDetails extracts the full metadata of a single post page,
// including its sidebar tags and comments. A page without a stats block
// has nothing worth returning, so the result is nil rather than a
// record of defaults.
func ParsePostDetails(html, baseURL string) *model.PostDetails {
	doc := newDocument(html)
	if doc == nil {
		return nil
	}

	stats := doc.Find("#stats")
	if stats.Length() == 0 {
		return nil
	}

	details := &model.PostDetails{Rating: model.RatingUnknown}
	details.Width, details.Height = parseImageObject(html)

	details.ImageURL = doc.Find("img#image").First().AttrOr("src", "")
	details.SampleURL = details.ImageURL
	if details.ImageURL == "" {
		// Video pages have no img#image; fall back to the original
		// image link.
		details.ImageURL = doc.Find(`a[href*="images"]`).First().AttrOr("href", "")
	}

	stats.Find("li").Each(func(_ int, li *goquery.Selection) {
		parseStatsItem(details, li, baseURL)
	})

	details.Tags = ParseSidebarTags(html)
	details.Comments = ParseComments(html)

	return details
}

// parseStatsItem routes one stats list item by its label. The labels
// are mutually exclusive prefixes, so the first match is the only
// match.
func parseStatsItem(details *model.PostDetails, li *goquery.Selection, baseURL string) {
	text := strings.TrimSpace(li.Text())

	switch {
	case strings.Contains(text, "Id:"):
		if m := statsIDPattern.FindStringSubmatch(text); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil {
				details.ID = id
			}
		}

	case strings.Contains(text, "Rating:"):
		details.Rating = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(text, "Rating:", "")))

	case strings.Contains(text, "Score:"):
		scoreText := strings.TrimSpace(li.Find("span").First().Text())
		if score, err := strconv.Atoi(scoreText); err == nil {
			details.Score = score
		}

	case strings.Contains(text, "Posted:"):
		if m := postedPattern.FindStringSubmatch(text); m != nil {
			details.PostedAt = strings.TrimSpace(m[1])
		}
		if link := li.Find("a").First(); link.Length() > 0 {
			details.Creator = model.Creator{
				Name:       strings.TrimSpace(link.Text()),
				ProfileURL: resolveHref(link.AttrOr("href", ""), baseURL),
			}
		}

	case strings.Contains(text, "Source:"):
		details.SourceURL = li.Find("a").First().AttrOr("href", "")
	}
}

// parseImageObject pulls width and height out of the inline script
// object the board embeds, e.g. image = {"width": 1280, "height": 720}.
// The two inner searches are independent of each other but both require
// the outer object match.
func parseImageObject(html string) (width, height int) {
	m := imageObjectPattern.FindStringSubmatch(html)
	if m == nil {
		return 0, 0
	}

	if wm := widthPattern.FindStringSubmatch(m[1]); wm != nil {
		width, _ = strconv.Atoi(wm[1])
	}
	if hm := heightPattern.FindStringSubmatch(m[1]); hm != nil {
		height, _ = strconv.Atoi(hm[1])
	}
	return width, height
}
