// Package blog turns GitHub Issues into a static blog: it fetches
// publishable issues, converts their bodies to HTML, and writes the post,
// list, and index pages.
package blog

import (
	"strings"
	"time"

	"github.com/hhhapz/issuepress/markdown"
)

const summaryLength = 140

// Post is a single publishable article derived from an Issue.
type Post struct {
	Title   string
	Slug    string
	Author  string
	Summary string
	Created time.Time

	HTML string
	TOC  []markdown.Entry
}

// FromIssue converts an issue body and derives the post metadata. Titles
// that slugify to nothing fall back to "post".
func FromIssue(issue Issue) Post {
	slug := markdown.Slug(issue.Title)
	if slug == "" {
		slug = "post"
	}

	res := markdown.Convert(issue.Body)
	return Post{
		Title:   issue.Title,
		Slug:    slug,
		Author:  issue.User.Login,
		Summary: Summarize(issue.Body, summaryLength),
		Created: issue.CreatedAt,
		HTML:    res.HTML,
		TOC:     res.TOC,
	}
}

// Summarize condenses whitespace and cuts body down to at most n runes,
// ellipsized when something was dropped.
func Summarize(body string, n int) string {
	condensed := strings.Join(strings.Fields(body), " ")
	runes := []rune(condensed)
	if len(runes) <= n {
		return condensed
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}
