// Package print writes human-readable summaries to the terminal.
package print

import (
	"fmt"
	"io"
	"strings"

	"md/internal/domain/consts"
	"md/internal/models"
	"md/internal/parsing"

	"github.com/dustin/go-humanize"
)

// MediaSummary prints the fields of an info JSON a user needs to confirm they picked the right
// media. Empty fields are skipped.
func MediaSummary(w io.Writer, info *models.InfoJSON) {
	if info == nil {
		return
	}

	var b strings.Builder
	b.WriteString("\n")
	writeField(&b, "Title", info.Title)
	writeField(&b, "Uploader", info.Uploader)
	writeField(&b, "Uploaded", parsing.UploadDate(info.UploadDate))
	writeField(&b, "Duration", parsing.Duration(info.Duration))
	if info.IsLive {
		writeField(&b, "Live", "yes")
	}
	writeField(&b, "Site", info.Extractor)
	writeField(&b, "Categories", strings.Join(info.Categories, ", "))
	b.WriteString("\n")

	fmt.Fprint(w, b.String())
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(consts.ColorYellow)
	b.WriteString(name)
	b.WriteString(":")
	b.WriteString(consts.ColorReset)
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// VideoFormatLabel describes a video-only format for the custom format menu.
func VideoFormatLabel(f *models.Format) string {
	parts := []string{f.FormatID, pad4(f.Vcodec)}
	if f.Resolution != "" {
		parts = append(parts, f.Resolution)
	}
	return joinCommon(parts, f)
}

// AudioFormatLabel describes an audio-only format for the custom format menu.
func AudioFormatLabel(f *models.Format) string {
	parts := []string{f.FormatID, pad4(f.Acodec)}
	if f.Asr > 0 {
		parts = append(parts, fmt.Sprintf("%dk", f.Asr/1000))
	}
	return joinCommon(parts, f)
}

func joinCommon(parts []string, f *models.Format) string {
	if f.Filesize > 0 {
		parts = append(parts, humanize.IBytes(f.Filesize))
	}
	if f.FormatNote != "" {
		parts = append(parts, f.FormatNote)
	}
	return strings.Join(parts, " ")
}

// pad4 fits a codec name into four columns.
func pad4(s string) string {
	if len(s) > 4 {
		return s[:4]
	}
	return fmt.Sprintf("%-4s", s)
}
