package blog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultAPI = "https://api.github.com"

// Issue is the slice of the GitHub Issues payload the generator consumes.
type Issue struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	User      struct {
		Login string `json:"login"`
	} `json:"user"`
	PullRequest *struct{} `json:"pull_request"`
}

type IssueOptions struct {
	Token      string
	Repository string // owner/repo
	Author     string // only this login may publish
	Label      string // optional label filter
	BaseURL    string // defaults to the public GitHub API
}

// Issues fetches every open issue of the repository, following rel="next"
// pagination. Pull requests and issues by other authors are dropped.
func Issues(client *http.Client, opts IssueOptions) ([]Issue, error) {
	base := opts.BaseURL
	if base == "" {
		base = defaultAPI
	}

	params := url.Values{
		"state":     {"open"},
		"per_page":  {"100"},
		"sort":      {"created"},
		"direction": {"desc"},
	}
	if opts.Label != "" {
		params.Set("labels", opts.Label)
	}
	next := fmt.Sprintf("%s/repos/%s/issues?%s", base, opts.Repository, params.Encode())

	var issues []Issue
	for next != "" {
		req, err := http.NewRequest(http.MethodGet, next, nil)
		if err != nil {
			return nil, errors.Wrap(err, "could not create request")
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if opts.Token != "" {
			req.Header.Set("Authorization", "token "+opts.Token)
		}

		res, err := client.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "could not get issues")
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("unexpected status: %s", res.Status)
		}

		var page []Issue
		err = json.NewDecoder(res.Body).Decode(&page)
		link := res.Header.Get("Link")
		res.Body.Close()
		if err != nil {
			return nil, errors.Wrap(err, "could not parse body")
		}

		for _, issue := range page {
			if issue.PullRequest != nil {
				continue
			}
			if opts.Author != "" && issue.User.Login != opts.Author {
				continue
			}
			issues = append(issues, issue)
		}

		next = nextPage(link)
	}

	return issues, nil
}

// nextPage extracts the rel="next" target from a Link header, if any.
func nextPage(header string) string {
	for _, link := range strings.Split(header, ",") {
		segments := strings.Split(link, ";")
		if len(segments) < 2 || !strings.Contains(segments[1], `rel="next"`) {
			continue
		}
		target := strings.TrimSpace(segments[0])
		if strings.HasPrefix(target, "<") && strings.HasSuffix(target, ">") {
			return target[1 : len(target)-1]
		}
	}
	return ""
}
