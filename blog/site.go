package blog

import (
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/hhhapz/issuepress/markdown"
)

//go:embed templates/*.html
var pages embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"date":    func(t time.Time) string { return t.Format("2006-01-02") },
	"reltime": humanize.Time,
	"toc": func(entries []markdown.Entry) template.HTML {
		return template.HTML(markdown.RenderTOC(entries))
	},
	"raw": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(pages, "templates/*.html"))

// Author is the profile shown on the homepage.
type Author struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Bio     string `json:"bio"`
	Avatar  string `json:"avatar"`
	CTAText string `json:"cta_text"`
}

// Site writes the static pages for a set of posts.
type Site struct {
	Author  Author
	RepoURL string
	Out     string
}

// Write renders every post into _posts plus the list and index pages,
// newest first. It returns the posts whose files did not exist before, so
// the caller can announce new publications.
func (s Site) Write(posts []Post) ([]Post, error) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Created.After(posts[j].Created)
	})

	postDir := filepath.Join(s.Out, "_posts")
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create post directory")
	}

	var created []Post
	for _, p := range posts {
		path := filepath.Join(postDir, p.Slug+".html")
		_, err := os.Stat(path)
		fresh := os.IsNotExist(err)

		if err := s.writePage(path, "post.html", map[string]interface{}{
			"Site": s,
			"Post": p,
		}); err != nil {
			return nil, err
		}
		if fresh {
			created = append(created, p)
		}
	}

	err := s.writePage(filepath.Join(s.Out, "list.html"), "list.html", map[string]interface{}{
		"Site":  s,
		"Posts": posts,
	})
	if err != nil {
		return nil, err
	}

	err = s.writePage(filepath.Join(s.Out, "index.html"), "index.html", map[string]interface{}{
		"Site": s,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s Site) writePage(path, name string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create "+path)
	}
	defer f.Close()

	if err := templates.ExecuteTemplate(f, name, data); err != nil {
		return errors.Wrap(err, "could not render "+name)
	}
	return nil
}
