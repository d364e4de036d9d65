package config

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatTime renders a last-access timestamp per the time_format setting.
// A nil timestamp renders as the empty string.
func (c *Config) FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	switch strings.ToLower(c.Settings.TimeFormat) {
	case "", "relative", "humanize":
		return humanize.Time(*t)
	case "rfc3339", "iso", "iso8601":
		return t.Format(time.RFC3339)
	case "rfc1123", "rfc2822":
		return t.Format(time.RFC1123Z)
	default:
		// Anything else is a Go reference-time layout.
		return t.Format(c.Settings.TimeFormat)
	}
}
