package blog

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssues(t *testing.T) {
	var gotAuth, gotLabels string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/hamza/blog/issues", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		switch r.URL.Query().Get("page") {
		case "", "1":
			gotLabels = r.URL.Query().Get("labels")
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/repos/hamza/blog/issues?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[
				{"title": "First", "body": "one", "user": {"login": "hamza"}},
				{"title": "Not mine", "body": "x", "user": {"login": "intruder"}},
				{"title": "A PR", "body": "y", "user": {"login": "hamza"}, "pull_request": {}}
			]`)
		case "2":
			fmt.Fprint(w, `[{"title": "Second", "body": "two", "user": {"login": "hamza"}}]`)
		}
	}))
	defer srv.Close()

	issues, err := Issues(srv.Client(), IssueOptions{
		Token:      "secret",
		Repository: "hamza/blog",
		Author:     "hamza",
		Label:      "blog-post",
		BaseURL:    srv.URL,
	})

	assert.NoError(t, err)
	assert.Equal(t, "token secret", gotAuth)
	assert.Equal(t, "blog-post", gotLabels)

	titles := make([]string, 0, len(issues))
	for _, i := range issues {
		titles = append(titles, i.Title)
	}
	assert.Equal(t, []string{"First", "Second"}, titles)
}

func TestIssuesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := Issues(srv.Client(), IssueOptions{Repository: "a/b", BaseURL: srv.URL})
	assert.Error(t, err)
}

func TestNextPage(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "next present",
			header: `<https://api.github.com/x?page=2>; rel="next", <https://api.github.com/x?page=5>; rel="last"`,
			want:   "https://api.github.com/x?page=2",
		},
		{
			name:   "only prev",
			header: `<https://api.github.com/x?page=1>; rel="prev"`,
			want:   "",
		},
		{
			name:   "empty",
			header: "",
			want:   "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, nextPage(c.header))
		})
	}
}
