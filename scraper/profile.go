package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"booruscrape/model"
)

var userIDPattern = regexp.MustCompile(`id=(\d+)`)

// ParseUserProfile extracts an account profile page. The username
// heading is the only hard requirement; without it the page is not a
// profile and the result is nil. Everything else falls back to zero
// values.
func ParseUserProfile(html, baseURL string) *model.UserProfile {
	doc := newDocument(html)
	if doc == nil {
		return nil
	}

	heading := doc.Find("#content > h2").First()
	if heading.Length() == 0 {
		return nil
	}

	profile := &model.UserProfile{
		Username: strings.TrimSpace(heading.Text()),
	}

	if href, ok := doc.Find(`a[href*="page=favorites"]`).First().Attr("href"); ok {
		if m := userIDPattern.FindStringSubmatch(href); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil {
				profile.ID = id
			}
		}
	}

	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		parseProfileRow(profile, tr)
	})

	// The page shows favorites first and uploads second; the order is
	// part of the page contract.
	imageLists := doc.Find(".image-list")
	if imageLists.Length() >= 1 {
		profile.RecentFavorites = parseThumbs(imageLists.Eq(0), baseURL)
	}
	if imageLists.Length() >= 2 {
		profile.RecentUploads = parseThumbs(imageLists.Eq(1), baseURL)
	}

	return profile
}

// parseProfileRow routes one two-cell table row by its label cell.
// "deleted" is tested before "posts" because the deleted-posts label
// contains both substrings.
func parseProfileRow(profile *model.UserProfile, tr *goquery.Selection) {
	cells := tr.Find("td")
	if cells.Length() < 2 {
		return
	}

	label := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
	value := cells.Eq(1)

	switch {
	case strings.Contains(label, "join date"):
		profile.JoinDate = strings.TrimSpace(value.Text())
	case strings.Contains(label, "level"):
		profile.Level = strings.TrimSpace(value.Text())
	case strings.Contains(label, "deleted"):
		profile.DeletedPostCount = parseCount(value.Text())
	case strings.Contains(label, "posts"):
		if link := value.Find("a").First(); link.Length() > 0 {
			profile.PostCount = parseCount(link.Text())
		}
	case strings.Contains(label, "favorites"):
		if link := value.Find("a").First(); link.Length() > 0 {
			profile.FavoriteCount = parseCount(link.Text())
		}
	}
}
