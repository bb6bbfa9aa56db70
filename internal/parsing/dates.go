package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// UploadDate formats a yt-dlp upload_date (yyyymmdd) as yyyy-mm-dd, returning the input
// unchanged if it cannot be parsed.
func UploadDate(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	t, err := dateparse.ParseAny(d)
	if err != nil {
		return d
	}
	return t.Format("2006-01-02")
}

// Duration formats a duration in seconds as h:mm:ss or m:ss.
func Duration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
