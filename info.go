package main

import (
	"log"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hhhapz/issuepress/blog"
)

// summary logs what a run produced.
func (g generator) summary(created []blog.Post, took time.Duration) {
	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	log.Printf("Site written to %s in %s (%s allocated)", g.out, took.Round(time.Millisecond), humanize.Bytes(stats.Alloc))
	for _, p := range created {
		log.Printf("New post: %s (%s)", p.Title, humanize.Time(p.Created))
	}
}
