package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	cases := []struct {
		name string
		body string
		n    int
		want string
	}{
		{
			name: "short body untouched",
			body: "a short post",
			n:    140,
			want: "a short post",
		},
		{
			name: "whitespace condensed",
			body: "# Title\n\nline one\nline   two",
			n:    140,
			want: "# Title line one line two",
		},
		{
			name: "long body ellipsized",
			body: strings.Repeat("word ", 50),
			n:    20,
			want: "word word word word…",
		},
		{
			name: "rune safe truncation",
			body: strings.Repeat("博", 30),
			n:    10,
			want: strings.Repeat("博", 9) + "…",
		},
		{
			name: "empty",
			body: "",
			n:    140,
			want: "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Summarize(c.body, c.n))
		})
	}
}

func TestFromIssue(t *testing.T) {
	issue := Issue{
		Title:     "Hello, World!",
		Body:      "# Intro\nSome text.",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	issue.User.Login = "hamza"

	post := FromIssue(issue)
	assert.Equal(t, "Hello, World!", post.Title)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "hamza", post.Author)
	assert.Equal(t, "# Intro Some text.", post.Summary)
	assert.Contains(t, post.HTML, `<h1 id="intro">Intro</h1>`)
	assert.Len(t, post.TOC, 1)
}

func TestFromIssueSlugFallback(t *testing.T) {
	post := FromIssue(Issue{Title: "!!!"})
	assert.Equal(t, "post", post.Slug)
}
