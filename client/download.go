package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"booruscrape/model"
	"booruscrape/utils"
)

// Download streams the media at rawURL into path, creating parent
// directories as needed.
func (c *Client) Download(ctx context.Context, rawURL, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	res, err := c.httpClient().R().
		SetContext(ctx).
		SetHeader("Accept", "image/webp,image/apng,image/*,*/*;q=0.8").
		SetHeader("Referer", c.baseURL).
		SetOutput(path).
		Get(rawURL)
	if err != nil {
		return err
	}
	if res.StatusCode() == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if res.IsError() {
		return fmt.Errorf("GET %s: unexpected status %s", rawURL, res.Status())
	}
	return nil
}

// ResolvePost normalizes any post reference to full details with a
// single fetch at most. A nil result with nil error means the board had
// no such post.
func (c *Client) ResolvePost(ctx context.Context, ref model.PostRef) (*model.PostDetails, error) {
	switch v := ref.(type) {
	case model.PostDetails:
		return &v, nil
	case *model.PostDetails:
		return v, nil
	case model.Post:
		return c.GetPostDetails(ctx, v.ID)
	case model.PostID:
		return c.GetPostDetails(ctx, int(v))
	default:
		return nil, fmt.Errorf("unsupported post reference %T", ref)
	}
}

// DownloadPost fetches the media of the referenced post into dir and
// returns the written path. The filename is <id>.<ext> with the
// extension taken from the media URL after any query string.
func (c *Client) DownloadPost(ctx context.Context, ref model.PostRef, dir string, useSample bool) (string, error) {
	details, err := c.ResolvePost(ctx, ref)
	if err != nil {
		return "", err
	}
	if details == nil {
		return "", fmt.Errorf("post %v not found", ref)
	}

	mediaURL := details.ImageURL
	if useSample && details.SampleURL != "" {
		mediaURL = details.SampleURL
	}
	if mediaURL == "" {
		return "", fmt.Errorf("post %d has no media URL", details.ID)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d.%s", details.ID, utils.FileExtension(mediaURL)))
	if err := c.Download(ctx, mediaURL, path); err != nil {
		return "", err
	}
	return path, nil
}
