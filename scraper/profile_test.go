package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const profilePage = `
<html><body>
<div id="content">
  <h2>alice</h2>
  <a href="index.php?page=favorites&amp;s=view&amp;id=31337">My Favorites</a>
  <table>
    <tr><td>Join Date:</td><td>2019-03-12</td></tr>
    <tr><td>Level:</td><td>Member</td></tr>
    <tr><td>Posts:</td><td><a href="index.php?page=post&amp;s=list&amp;tags=user:alice">1,204</a></td></tr>
    <tr><td>Deleted Posts:</td><td>37</td></tr>
    <tr><td>Favorites:</td><td><a href="index.php?page=favorites&amp;s=view&amp;id=31337">5,002</a></td></tr>
    <tr><td>only one cell</td></tr>
  </table>
  <div class="image-list">
    <span class="thumb">
      <a id="p111" href="index.php?page=post&amp;s=view&amp;id=111">
        <img src="https://wimg.example.com/thumbnails/1/thumb_fav.jpg" alt="fav_tag" title="score:1 rating:safe"/>
      </a>
    </span>
  </div>
  <div class="image-list">
    <span class="thumb">
      <a id="p222" href="index.php?page=post&amp;s=view&amp;id=222">
        <img src="https://wimg.example.com/thumbnails/2/thumb_up.jpg" alt="upload_tag" title="score:2 rating:questionable"/>
      </a>
    </span>
  </div>
</div>
</body></html>`

func TestParseUserProfile(t *testing.T) {
	profile := ParseUserProfile(profilePage, "https://rule34.xxx")
	require.NotNil(t, profile)

	require.Equal(t, "alice", profile.Username)
	require.Equal(t, 31337, profile.ID)
	require.Equal(t, "2019-03-12", profile.JoinDate)
	require.Equal(t, "Member", profile.Level)
	require.Equal(t, 1204, profile.PostCount)
	require.Equal(t, 37, profile.DeletedPostCount)
	require.Equal(t, 5002, profile.FavoriteCount)
}

func TestParseUserProfileListOrder(t *testing.T) {
	profile := ParseUserProfile(profilePage, "https://rule34.xxx")
	require.NotNil(t, profile)

	// First image list on the page is favorites, second is uploads.
	require.Len(t, profile.RecentFavorites, 1)
	require.Equal(t, 111, profile.RecentFavorites[0].ID)
	require.Len(t, profile.RecentUploads, 1)
	require.Equal(t, 222, profile.RecentUploads[0].ID)

	require.Equal(t, "https://rule34.xxx/index.php?page=post&s=view&id=111",
		profile.RecentFavorites[0].DetailURL)
}

func TestParseUserProfileSingleImageList(t *testing.T) {
	page := `
<html><body>
<div id="content">
  <h2>bob</h2>
  <div class="image-list">
    <span class="thumb">
      <a id="p333" href="index.php?page=post&amp;s=view&amp;id=333">
        <img src="https://wimg.example.com/thumbnails/3/t.jpg" alt="t" title=""/>
      </a>
    </span>
  </div>
</div>
</body></html>`

	profile := ParseUserProfile(page, "https://rule34.xxx")
	require.NotNil(t, profile)
	require.Equal(t, "bob", profile.Username)
	require.Equal(t, 0, profile.ID)
	require.Len(t, profile.RecentFavorites, 1)
	require.Empty(t, profile.RecentUploads)
}

func TestParseUserProfileMissingHeading(t *testing.T) {
	require.Nil(t, ParseUserProfile("<html><body><div id=\"content\"><p>Not found</p></div></body></html>", "https://rule34.xxx"))
}

func TestParseUserProfileIdempotent(t *testing.T) {
	first := ParseUserProfile(profilePage, "https://rule34.xxx")
	second := ParseUserProfile(profilePage, "https://rule34.xxx")
	require.Equal(t, first, second)
}
