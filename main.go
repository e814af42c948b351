package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	configPath := flag.String("config", "config/author.json", "author profile and generator settings")
	out := flag.String("out", ".", "output directory for the generated site")
	dump := flag.Bool("dump", false, "pretty-print converted posts and skip announcements")
	flag.Parse()

	cfg, err := config(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo == "" {
		log.Fatal("no repository provided, set GITHUB_REPOSITORY")
	}
	if label := os.Getenv("BLOG_LABEL"); label != "" {
		cfg.Label = label
	}
	if owner := os.Getenv("BLOG_OWNER"); owner != "" {
		cfg.Owner = owner
	}
	if cfg.Owner == "" {
		cfg.Owner = strings.SplitN(repo, "/", 2)[0]
	}

	g := generator{
		cfg:    cfg,
		client: http.DefaultClient,
		token:  os.Getenv("GITHUB_TOKEN"),
		repo:   repo,
		out:    *out,
		dump:   *dump,
	}

	start := time.Now()
	created, err := g.run()
	if err != nil {
		log.Fatalln(err)
	}
	g.summary(created, time.Since(start))
}
