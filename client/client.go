// Package client is the HTTP collaborator for the parsing core: it
// fetches complete listing, post and profile pages from a booru-style
// board and hands them to the scraper package. Retry and backoff for
// transient failures happen here, never inside the parsers.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/caffix/cloudflare-roundtripper/cfrt"
	"github.com/go-resty/resty/v2"

	"booruscrape/model"
	"booruscrape/scraper"
)

const (
	DefaultBaseURL      = "https://rule34.xxx/index.php"
	DefaultPostsPerPage = 42
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	defaultTimeout    = 30 * time.Second
	defaultRetryCount = 3
)

// ErrRateLimited reports that the board kept answering 429 after the
// retry budget was spent. Callers should slow down, not treat the post
// as missing.
var ErrRateLimited = errors.New("rate limited by remote host")

type Options struct {
	// BaseURL is the board endpoint, e.g. https://rule34.xxx/index.php.
	BaseURL string
	// PostsPerPage sets the pagination offset multiplier.
	PostsPerPage int
	Timeout      time.Duration
	UserAgent    string
	// RetryCount and RetryWaitTime tune the backoff on 429s and
	// transport errors. Zero values select the defaults.
	RetryCount    int
	RetryWaitTime time.Duration
}

// Client talks to one board. The underlying HTTP client is built on
// first use and released by Close.
type Client struct {
	baseURL      string
	rootURL      string
	postsPerPage int
	opts         Options
	http         *resty.Client
}

func New(opts Options) *Client {
	c := new(Client)
	c.opts = opts

	c.baseURL = opts.BaseURL
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	c.rootURL = siteRoot(c.baseURL)

	c.postsPerPage = opts.PostsPerPage
	if c.postsPerPage <= 0 {
		c.postsPerPage = DefaultPostsPerPage
	}

	return c
}

// siteRoot reduces an endpoint URL to scheme://host for resolving the
// relative hrefs the parsers encounter.
func siteRoot(endpoint string) string {
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		return u.Scheme + "://" + u.Host
	}
	return scraper.DefaultBaseURL
}

func (c *Client) httpClient() *resty.Client {
	if c.http != nil {
		return c.http
	}

	timeout := c.opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := c.opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	retryCount := c.opts.RetryCount
	if retryCount == 0 {
		retryCount = defaultRetryCount
	}
	retryWait := c.opts.RetryWaitTime
	if retryWait == 0 {
		retryWait = 500 * time.Millisecond
	}

	c.http = resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5").
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(20 * retryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == http.StatusTooManyRequests
		})

	transport, err := cfrt.New(&http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   15 * time.Second,
			KeepAlive: 15 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	})
	if err == nil {
		c.http.SetTransport(transport)
	}

	return c.http
}

// Close releases the HTTP client. The next request builds a fresh one.
func (c *Client) Close() {
	if c.http != nil {
		c.http.GetClient().CloseIdleConnections()
		c.http = nil
	}
}

func (c *Client) getHTML(ctx context.Context, params map[string]string) (string, error) {
	res, err := c.httpClient().R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.baseURL)
	if err != nil {
		return "", err
	}
	if res.StatusCode() == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if res.IsError() {
		return "", fmt.Errorf("GET %s: unexpected status %s", res.Request.URL, res.Status())
	}
	return string(res.Body()), nil
}

// GetPosts fetches one listing page and returns its posts together with
// the sidebar tags.
func (c *Client) GetPosts(ctx context.Context, tags string, page int) ([]model.Post, []model.Tag, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * c.postsPerPage

	html, err := c.getHTML(ctx, map[string]string{
		"page": "post",
		"s":    "list",
		"tags": tags,
		"pid":  strconv.Itoa(offset),
	})
	if err != nil {
		return nil, nil, err
	}

	return scraper.ParsePosts(html, c.rootURL), scraper.ParseSidebarTags(html), nil
}

// Search fetches one listing page and returns just its posts.
func (c *Client) Search(ctx context.Context, tags string, page int) ([]model.Post, error) {
	posts, _, err := c.GetPosts(ctx, tags, page)
	return posts, err
}

// GetSidebarTags returns the related tags for a search.
func (c *Client) GetSidebarTags(ctx context.Context, tags string) ([]model.Tag, error) {
	_, sidebarTags, err := c.GetPosts(ctx, tags, 1)
	return sidebarTags, err
}

// GetPostDetails fetches one post page. A nil result with a nil error
// means the page had no recognizable post on it.
func (c *Client) GetPostDetails(ctx context.Context, id int) (*model.PostDetails, error) {
	html, err := c.getHTML(ctx, map[string]string{
		"page": "post",
		"s":    "view",
		"id":   strconv.Itoa(id),
	})
	if err != nil {
		return nil, err
	}
	return scraper.ParsePostDetails(html, c.rootURL), nil
}

// GetUserProfile fetches an account profile page by username. A nil
// result with a nil error means no such profile.
func (c *Client) GetUserProfile(ctx context.Context, username string) (*model.UserProfile, error) {
	html, err := c.getHTML(ctx, map[string]string{
		"page":  "account",
		"s":     "profile",
		"uname": username,
	})
	if err != nil {
		return nil, err
	}
	return scraper.ParseUserProfile(html, c.rootURL), nil
}

// PostsPerPage reports the pagination offset multiplier in effect.
func (c *Client) PostsPerPage() int {
	return c.postsPerPage
}

// BaseURL reports the board endpoint in effect.
func (c *Client) BaseURL() string {
	return c.baseURL
}
