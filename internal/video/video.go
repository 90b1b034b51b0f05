// Package video turns a project's video link into something the viewer can play.
package video

import (
	"net/url"
	"strings"
)

type Kind string

const (
	KindYouTube     Kind = "youtube"
	KindNative      Kind = "native"
	KindUnavailable Kind = "unavailable"
)

// Player describes how to render a video link. Source is always the link the
// project was authored with, so the unavailable panel can still offer it.
type Player struct {
	Kind   Kind
	URL    string
	Source string
}

const embedBase = "https://www.youtube.com/embed/"

// EmbedURL is the canonical player URL for a YouTube video id.
func EmbedURL(id string) string {
	return embedBase + url.PathEscape(id) + "?autoplay=1&rel=0"
}

// Parse recognizes standard, shortened and embed YouTube links and maps them
// onto the same embed URL. Any other absolute http(s) link is played natively;
// anything unparseable is reported as unavailable.
func Parse(src string) Player {
	src = strings.TrimSpace(src)
	p := Player{Source: src}

	u, err := url.Parse(src)
	if err != nil || src == "" {
		p.Kind = KindUnavailable
		return p
	}

	if id := youTubeID(u); id != "" {
		p.Kind = KindYouTube
		p.URL = EmbedURL(id)
		return p
	}

	web := (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	if !web && !strings.HasPrefix(src, "/") {
		p.Kind = KindUnavailable
		return p
	}

	p.Kind = KindNative
	p.URL = src
	return p
}

// YouTubeID extracts the video id from a YouTube link, or "" if there is none.
func YouTubeID(src string) string {
	u, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return ""
	}
	return youTubeID(u)
}

func youTubeID(u *url.URL) string {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, sub := range []string{"m.", "music."} {
		host = strings.TrimPrefix(host, sub)
	}

	switch host {
	case "youtu.be":
		id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		return id
	case "youtube.com", "youtube-nocookie.com":
		if u.Path == "/watch" {
			return u.Query().Get("v")
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			id, _, _ := strings.Cut(rest, "/")
			return id
		}
		if rest, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
			id, _, _ := strings.Cut(rest, "/")
			return id
		}
	}
	return ""
}
