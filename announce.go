package main

import (
	"fmt"
	"log"

	"github.com/diamondburned/arikawa/v3/api/webhook"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/hhhapz/issuepress/blog"
)

const accentColor = 0x00ADD8

// announce posts each newly published article to the configured Discord
// webhook. Failures are logged, a broken webhook never aborts a publish.
func (g generator) announce(posts []blog.Post) {
	if !g.cfg.Webhook.ID.IsValid() || g.cfg.Webhook.Token == "" {
		return
	}

	client := webhook.New(g.cfg.Webhook.ID, g.cfg.Webhook.Token)
	for _, p := range posts {
		err := client.Execute(webhook.ExecuteData{
			Embeds: []discord.Embed{{
				Title:       p.Title,
				URL:         fmt.Sprintf("%s/_posts/%s.html", pagesURL(g.repo), p.Slug),
				Description: p.Summary,
				Footer: &discord.EmbedFooter{
					Text: p.Author + "\n" + p.Created.Format("2006-01-02"),
				},
				Color: accentColor,
			}},
		})
		if err != nil {
			log.Printf("Could not announce %q: %v", p.Title, err)
			continue
		}
		log.Printf("Announced %q", p.Title)
	}
}
