package model

// Rating is the content-classification label a board assigns to a post.
type Rating = string

const (
	RatingSafe         Rating = "safe"
	RatingQuestionable Rating = "questionable"
	RatingExplicit     Rating = "explicit"
	RatingUnknown      Rating = "unknown"
)

// Post is one thumbnail entry from a listing grid. An ID of zero means
// the entry was present but its identifier could not be parsed.
type Post struct {
	ID         int
	PreviewURL string
	Tags       []string
	Score      int
	Rating     Rating
	DetailURL  string
	IsVideo    bool
}

// Tag is one entry from the search sidebar.
type Tag struct {
	Name  string
	Count int
	Type  string
}

// PostComment is one user comment on a post page.
type PostComment struct {
	ID        int
	Username  string
	Text      string
	Score     int
	Timestamp string
}

// Creator identifies the account that posted an image.
type Creator struct {
	Name       string
	ProfileURL string
}

// PostDetails is the full metadata of a single post page.
type PostDetails struct {
	ID        int
	ImageURL  string
	SampleURL string
	Width     int
	Height    int
	Rating    Rating
	Score     int
	Creator   Creator
	PostedAt  string
	SourceURL string
	Tags      []Tag
	Comments  []PostComment
}

// UserProfile is the metadata of an account profile page.
type UserProfile struct {
	Username         string
	ID               int
	JoinDate         string
	Level            string
	PostCount        int
	DeletedPostCount int
	FavoriteCount    int
	RecentUploads    []Post
	RecentFavorites  []Post
}
