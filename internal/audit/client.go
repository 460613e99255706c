package audit

import (
	"strings"

	"github.com/mssola/useragent"
)

// ClientSnapshot summarizes a User-Agent for the LOGIN record: browser family
// and major version, operating system and form factor. Returns nil for an
// empty User-Agent.
func ClientSnapshot(userAgent string) Snapshot {
	if strings.TrimSpace(userAgent) == "" {
		return nil
	}
	ua := useragent.New(userAgent)
	browser, version := ua.Browser()

	major := "unknown"
	if v, _, _ := strings.Cut(version, "."); v != "" {
		major = v
	}
	platform := "desktop"
	if ua.Bot() {
		platform = "bot"
	} else if ua.Mobile() {
		platform = "mobile"
	}

	return Snapshot{
		"browser":  orUnknown(browser),
		"version":  major,
		"os":       orUnknown(ua.OS()),
		"platform": platform,
	}
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
