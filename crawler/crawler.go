// Package crawler walks listing pages of a booru-style board and feeds
// each complete response body through the parsing core. It is
// collaborator-side glue: the parsers themselves never fetch.
package crawler

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/caffix/cloudflare-roundtripper/cfrt"
	"github.com/gocolly/colly"
	"golang.org/x/time/rate"

	"booruscrape/model"
	"booruscrape/scraper"
)

func newCollectorWithCFRoundtripper() *colly.Collector {
	collector := colly.NewCollector(
		colly.IgnoreRobotsTxt(),
		colly.UserAgent("Mozilla"),
	)
	transport, err :=
		cfrt.New(&http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   15 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		})
	if err != nil {
		log.Fatal(err)
	}
	collector.WithTransport(transport)
	collector.Limit(&colly.LimitRule{
		Parallelism: 1,
		RandomDelay: 2 * time.Second,
	})
	return collector
}

// ListingCrawler accumulates posts across consecutive listing pages of
// one search. Pages are visited strictly one at a time.
type ListingCrawler struct {
	baseURL   string
	rootURL   string
	perPage   int
	collector *colly.Collector
	// Limiter paces page fetches. Replace before LoadPages to change
	// the default of one page per second.
	Limiter *rate.Limiter
	Posts   []model.Post
	Tags    []model.Tag
}

func NewListingCrawler(baseURL string, perPage int) *ListingCrawler {
	lc := new(ListingCrawler)
	lc.baseURL = baseURL
	lc.perPage = perPage
	lc.Limiter = rate.NewLimiter(rate.Limit(1), 1)
	lc.Posts = make([]model.Post, 0)

	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		lc.rootURL = u.Scheme + "://" + u.Host
	} else {
		lc.rootURL = scraper.DefaultBaseURL
	}

	lc.collector = newCollectorWithCFRoundtripper()
	lc.collector.OnResponse(func(r *colly.Response) {
		html := string(r.Body)
		lc.Posts = append(lc.Posts, scraper.ParsePosts(html, lc.rootURL)...)
		if lc.Tags == nil {
			lc.Tags = scraper.ParseSidebarTags(html)
		}
	})

	lc.collector.OnRequest(func(r *colly.Request) {
		log.Printf("ListingCrawler visiting %s", r.URL.String())
	})

	lc.collector.OnError(func(r *colly.Response, err error) {
		log.Printf("ListingCrawler got %v for %s", err, r.Request.URL)
	})

	return lc
}

// LoadPages visits up to maxPages consecutive listing pages for the tag
// search, stopping early when a page comes back without posts.
func (lc *ListingCrawler) LoadPages(ctx context.Context, tags string, maxPages int) error {
	for page := 1; page <= maxPages; page++ {
		if err := lc.Limiter.Wait(ctx); err != nil {
			return err
		}

		before := len(lc.Posts)
		if err := lc.collector.Visit(lc.pageURL(tags, page)); err != nil {
			return err
		}
		if len(lc.Posts) == before {
			// Walked off the end of the result set.
			break
		}
	}
	return nil
}

func (lc *ListingCrawler) pageURL(tags string, page int) string {
	query := url.Values{}
	query.Set("page", "post")
	query.Set("s", "list")
	query.Set("tags", tags)
	query.Set("pid", strconv.Itoa((page-1)*lc.perPage))
	return fmt.Sprintf("%s?%s", lc.baseURL, query.Encode())
}
