package main

import (
	"encoding/json"
	"os"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"

	"github.com/hhhapz/issuepress/blog"
)

const defaultLabel = "blog-post"

type configuration struct {
	Author  blog.Author   `json:"author"`
	Label   string        `json:"label"`
	Owner   string        `json:"owner"`
	Webhook webhookConfig `json:"webhook"`
}

// webhookConfig identifies an optional Discord webhook that new posts are
// announced to.
type webhookConfig struct {
	ID    discord.WebhookID `json:"id"`
	Token string            `json:"token"`
}

var defaultAuthor = blog.Author{
	Name:    "Issuepress",
	Tagline: "Write an Issue, publish a post",
	Bio:     "Posts are written as GitHub Issues and published as a static site.",
	Avatar:  "https://avatars.githubusercontent.com/u/9919?v=4",
	CTAText: "Read all posts",
}

// config loads path. A missing file is not an error: the defaults carry a
// complete author profile.
func config(path string) (configuration, error) {
	fileBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return configFromBytes([]byte("{}"))
	}
	if err != nil {
		return configuration{}, errors.Wrap(err, "could not open config")
	}
	return configFromBytes(fileBytes)
}

// configFromBytes parses JSON over the defaults, so partial profiles keep
// the unset fields.
func configFromBytes(b []byte) (configuration, error) {
	config := configuration{
		Author: defaultAuthor,
		Label:  defaultLabel,
	}
	if err := json.Unmarshal(b, &config); err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return config, nil
}
