package blog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSite(t *testing.T) Site {
	t.Helper()
	return Site{
		Author: Author{
			Name:    "Tester",
			Tagline: "tagline",
			Bio:     "bio",
			CTAText: "Read",
		},
		RepoURL: "https://github.com/hamza/blog",
		Out:     t.TempDir(),
	}
}

func TestSiteWrite(t *testing.T) {
	site := testSite(t)

	posts := []Post{
		FromIssue(Issue{
			Title:     "Older",
			Body:      "# Intro\nhello <world>",
			CreatedAt: time.Now().Add(-48 * time.Hour),
		}),
		FromIssue(Issue{
			Title:     "Newer",
			Body:      "plain body",
			CreatedAt: time.Now().Add(-time.Hour),
		}),
	}

	created, err := site.Write(posts)
	assert.NoError(t, err)
	assert.Len(t, created, 2)

	post, err := os.ReadFile(filepath.Join(site.Out, "_posts", "older.html"))
	assert.NoError(t, err)
	assert.Contains(t, string(post), `<h1 id="intro">Intro</h1>`)
	assert.Contains(t, string(post), `href="#intro"`)
	assert.Contains(t, string(post), "hello &lt;world&gt;")

	list, err := os.ReadFile(filepath.Join(site.Out, "list.html"))
	assert.NoError(t, err)
	// newest first
	assert.Less(t,
		strings.Index(string(list), "Newer"),
		strings.Index(string(list), "Older"))

	index, err := os.ReadFile(filepath.Join(site.Out, "index.html"))
	assert.NoError(t, err)
	assert.Contains(t, string(index), "Tester")
	assert.Contains(t, string(index), "https://github.com/hamza/blog")
}

func TestSiteWriteReportsOnlyNewPosts(t *testing.T) {
	site := testSite(t)
	posts := []Post{FromIssue(Issue{Title: "One", Body: "x", CreatedAt: time.Now()})}

	created, err := site.Write(posts)
	assert.NoError(t, err)
	assert.Len(t, created, 1)

	created, err = site.Write(posts)
	assert.NoError(t, err)
	assert.Empty(t, created)
}

func TestSiteWriteEmpty(t *testing.T) {
	site := testSite(t)

	created, err := site.Write(nil)
	assert.NoError(t, err)
	assert.Empty(t, created)

	list, err := os.ReadFile(filepath.Join(site.Out, "list.html"))
	assert.NoError(t, err)
	assert.Contains(t, string(list), "No posts yet")
}
