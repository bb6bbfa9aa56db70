package parsing

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SiteKey returns the registrable domain of a URL (e.g. "youtube.com" for
// "https://music.youtube.com/watch?v=x"). Inputs yt-dlp accepts that are not URLs, such as
// "ytsearch:query", return an empty key.
func SiteKey(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return ""
	}
	return domain
}
