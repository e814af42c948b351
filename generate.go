package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/k0kubun/pp"

	"github.com/hhhapz/issuepress/blog"
)

type generator struct {
	cfg    configuration
	client *http.Client
	token  string
	repo   string
	out    string
	dump   bool
}

// run fetches publishable issues, converts them, writes the site, and
// announces posts that did not exist before.
func (g generator) run() ([]blog.Post, error) {
	issues, err := blog.Issues(g.client, blog.IssueOptions{
		Token:      g.token,
		Repository: g.repo,
		Author:     g.cfg.Owner,
		Label:      g.cfg.Label,
	})
	if err != nil {
		return nil, err
	}

	posts := make([]blog.Post, 0, len(issues))
	for _, issue := range issues {
		post := blog.FromIssue(issue)
		if g.dump {
			pp.Println(post)
		}
		posts = append(posts, post)
	}

	site := blog.Site{
		Author:  g.cfg.Author,
		RepoURL: "https://github.com/" + g.repo,
		Out:     g.out,
	}
	created, err := site.Write(posts)
	if err != nil {
		return nil, err
	}

	if !g.dump {
		g.announce(created)
	}
	return created, nil
}

// pagesURL is where GitHub Pages serves the repository from.
func pagesURL(repo string) string {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 {
		return ""
	}
	return fmt.Sprintf("https://%s.github.io/%s", parts[0], parts[1])
}
