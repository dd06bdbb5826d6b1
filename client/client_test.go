package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"booruscrape/model"
)

const listingBody = `
<html><body>
<span class="thumb">
  <a id="p1234" href="index.php?page=post&amp;s=view&amp;id=1234">
    <img src="/thumbnails/1/thumb_abc.jpg" alt="1girl solo" title="score:9 rating:safe"/>
  </a>
</span>
<div id="tag-sidebar">
  <ul><li class="tag-type-artist"><a href="index.php?page=post&amp;s=list&amp;tags=some_artist">some_artist</a> <span class="tag-count">12</span></li></ul>
</div>
</body></html>`

func detailBody(mediaURL string) string {
	return fmt.Sprintf(`
<html><body>
<script>image = {"width":640,"height":480};</script>
<img id="image" src="%s"/>
<div id="stats"><ul>
  <li>Id: 1234</li>
  <li>Rating: Safe</li>
</ul></div>
</body></html>`, mediaURL)
}

func newBoardServer(t *testing.T, listHits *int32) *httptest.Server {
	var server *httptest.Server
	mux := http.NewServeMux()

	mux.HandleFunc("/index.php", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("s") {
		case "list":
			if listHits != nil {
				atomic.AddInt32(listHits, 1)
			}
			fmt.Fprint(w, listingBody)
		case "view":
			fmt.Fprint(w, detailBody(server.URL+"/images/2713/abc.jpeg"))
		case "profile":
			fmt.Fprint(w, `<html><body><div id="content"><h2>alice</h2></div></body></html>`)
		default:
			http.NotFound(w, r)
		}
	})

	mux.HandleFunc("/images/2713/abc.jpeg", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-really-a-jpeg"))
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server) *Client {
	return New(Options{
		BaseURL:       server.URL + "/index.php",
		RetryCount:    2,
		RetryWaitTime: 10 * time.Millisecond,
	})
}

func TestGetPosts(t *testing.T) {
	server := newBoardServer(t, nil)
	c := newTestClient(server)
	defer c.Close()

	posts, tags, err := c.GetPosts(context.Background(), "1girl solo", 1)
	require.Equal(t, nil, err)

	require.Len(t, posts, 1)
	require.Equal(t, 1234, posts[0].ID)
	require.Equal(t, server.URL+"/index.php?page=post&s=view&id=1234", posts[0].DetailURL)
	require.Equal(t, model.RatingSafe, posts[0].Rating)

	require.Len(t, tags, 1)
	require.Equal(t, "some_artist", tags[0].Name)
}

func TestGetPostDetails(t *testing.T) {
	server := newBoardServer(t, nil)
	c := newTestClient(server)
	defer c.Close()

	details, err := c.GetPostDetails(context.Background(), 1234)
	require.Equal(t, nil, err)
	require.NotNil(t, details)
	require.Equal(t, 1234, details.ID)
	require.Equal(t, 640, details.Width)
	require.Equal(t, model.RatingSafe, details.Rating)
}

func TestGetUserProfile(t *testing.T) {
	server := newBoardServer(t, nil)
	c := newTestClient(server)
	defer c.Close()

	profile, err := c.GetUserProfile(context.Background(), "alice")
	require.Equal(t, nil, err)
	require.NotNil(t, profile)
	require.Equal(t, "alice", profile.Username)
}

func TestGetPostDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><h1>Nothing here</h1></body></html>")
	}))
	defer server.Close()

	c := newTestClient(server)
	defer c.Close()

	details, err := c.GetPostDetails(context.Background(), 404404)
	require.Equal(t, nil, err)
	require.Nil(t, details)
}

func TestRetriesAfterRateLimit(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, listingBody)
	}))
	defer server.Close()

	c := newTestClient(server)
	defer c.Close()

	posts, err := c.Search(context.Background(), "1girl", 1)
	require.Equal(t, nil, err)
	require.Len(t, posts, 1)
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestRateLimitExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient(server)
	defer c.Close()

	_, err := c.Search(context.Background(), "1girl", 1)
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestPaginationOffset(t *testing.T) {
	var gotPid string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPid = r.URL.Query().Get("pid")
		fmt.Fprint(w, listingBody)
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL + "/index.php", PostsPerPage: 42})
	defer c.Close()

	_, err := c.Search(context.Background(), "1girl", 3)
	require.Equal(t, nil, err)
	require.Equal(t, "84", gotPid)
}
