package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func thumb(id int) string {
	return fmt.Sprintf(`
<span class="thumb">
  <a id="p%d" href="index.php?page=post&amp;s=view&amp;id=%d">
    <img src="/thumbnails/%d.jpg" alt="tag_%d" title="score:1 rating:safe"/>
  </a>
</span>`, id, id, id, id)
}

func TestLoadPagesAccumulates(t *testing.T) {
	perPage := 2
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pid, _ := strconv.Atoi(r.URL.Query().Get("pid"))
		fmt.Fprint(w, "<html><body>")
		// Three posts total across two pages.
		for id := pid + 1; id <= pid+perPage && id <= 3; id++ {
			fmt.Fprint(w, thumb(id))
		}
		fmt.Fprint(w, `<div id="tag-sidebar"><ul><li><a href="index.php?page=post&amp;s=list&amp;tags=t">t</a> <span class="tag-count">5</span></li></ul></div>`)
		fmt.Fprint(w, "</body></html>")
	}))
	defer server.Close()

	lc := NewListingCrawler(server.URL+"/index.php", perPage)
	lc.Limiter = rate.NewLimiter(rate.Inf, 1)

	err := lc.LoadPages(context.Background(), "tag_1", 5)
	require.Equal(t, nil, err)

	// Pages 1 and 2 carry posts, page 3 is empty and stops the walk.
	require.Len(t, lc.Posts, 3)
	require.Equal(t, 1, lc.Posts[0].ID)
	require.Equal(t, 3, lc.Posts[2].ID)

	require.Len(t, lc.Tags, 1)
	require.Equal(t, "t", lc.Tags[0].Name)
}

func TestLoadPagesRespectsBudget(t *testing.T) {
	var pages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		pid, _ := strconv.Atoi(r.URL.Query().Get("pid"))
		fmt.Fprintf(w, "<html><body>%s</body></html>", thumb(pid+1))
	}))
	defer server.Close()

	lc := NewListingCrawler(server.URL+"/index.php", 1)
	lc.Limiter = rate.NewLimiter(rate.Inf, 1)

	err := lc.LoadPages(context.Background(), "t", 2)
	require.Equal(t, nil, err)
	require.Equal(t, 2, pages)
	require.Len(t, lc.Posts, 2)
}

func TestPostDetailURLsResolved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body>%s</body></html>", thumb(9))
	}))
	defer server.Close()

	lc := NewListingCrawler(server.URL+"/index.php", 42)
	lc.Limiter = rate.NewLimiter(rate.Inf, 1)

	err := lc.LoadPages(context.Background(), "t", 1)
	require.Equal(t, nil, err)
	require.Len(t, lc.Posts, 1)
	require.Equal(t, server.URL+"/index.php?page=post&s=view&id=9", lc.Posts[0].DetailURL)
}
