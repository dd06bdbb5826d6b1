package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"booruscrape/model"
)

var (
	commentIDPattern = regexp.MustCompile(`^c(\d+)$`)
	timestampPattern = regexp.MustCompile(`Posted on (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// ParseComments extracts the comment list of a post page, in document
// order. Only elements whose id matches the c<digits> pattern count as
// comments; everything else under the container is ignored.
func ParseComments(htmlText string) []model.PostComment {
	doc := newDocument(htmlText)
	if doc == nil {
		return nil
	}

	list := doc.Find("#comment-list")
	if list.Length() == 0 {
		return nil
	}

	var comments []model.PostComment
	list.Find(`div[id^="c"]`).Each(func(_ int, div *goquery.Selection) {
		m := commentIDPattern.FindStringSubmatch(div.AttrOr("id", ""))
		if m == nil {
			return
		}
		id, _ := strconv.Atoi(m[1])
		comments = append(comments, parseComment(id, div))
	})
	return comments
}

func parseComment(id int, div *goquery.Selection) model.PostComment {
	comment := model.PostComment{ID: id}

	if col1 := div.Find(".col1").First(); col1.Length() > 0 {
		comment.Username = strings.TrimSpace(col1.Find("a").First().Text())

		if m := timestampPattern.FindStringSubmatch(col1.Text()); m != nil {
			comment.Timestamp = m[1]
		}

		scoreText := strings.TrimSpace(col1.Find(`a[id^="sc"]`).First().Text())
		if score, err := strconv.Atoi(scoreText); err == nil {
			comment.Score = score
		}
	}

	if col2 := div.Find(".col2").First(); col2.Length() > 0 {
		if markup, err := col2.Html(); err == nil {
			comment.Text = flattenCommentMarkup(markup)
		}
	}

	return comment
}

// flattenCommentMarkup converts line-break tags to newlines before
// dropping the remaining markup; stripping tags first would lose the
// break positions.
func flattenCommentMarkup(markup string) string {
	markup = lineBreakPattern.ReplaceAllString(markup, "\n")

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}

	var text strings.Builder
	var collectText func(*html.Node)
	collectText = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectText(c)
		}
	}
	collectText(root)

	return strings.TrimSpace(text.String())
}
