package parsing_test

import (
	"os"
	"path/filepath"
	"testing"

	"md/internal/parsing"
)

const sampleInfoJSON = `{
  "id": "abc123",
  "title": "Sample Song",
  "uploader": "Someone",
  "upload_date": "20240315",
  "duration": 3725.4,
  "categories": ["Music"],
  "webpage_url": "https://www.youtube.com/watch?v=abc123",
  "extractor": "youtube",
  "formats": [
    {"format_id": "140", "ext": "m4a", "acodec": "mp4a.40.2", "vcodec": "none", "asr": 44100, "filesize": 3145728},
    {"format_id": "251", "ext": "webm", "acodec": "opus", "vcodec": "none", "asr": 48000},
    {"format_id": "137", "ext": "mp4", "acodec": "none", "vcodec": "avc1.640028", "width": 1920, "resolution": "1920x1080"},
    {"format_id": "248", "ext": "webm", "acodec": "none", "vcodec": "vp9", "width": 2560, "resolution": "2560x1440"},
    {"format_id": "18", "ext": "mp4", "acodec": "mp4a.40.2", "vcodec": "avc1.42001E", "width": 640},
    {"format_id": "sb0", "ext": "mhtml", "acodec": "none", "vcodec": "none", "resolution": "none"}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", p, err)
	}
	return p
}

func TestFindInfoJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := parsing.FindInfoJSON(dir); err == nil {
		t.Fatalf("expected error for empty directory")
	}

	writeFile(t, dir, "a-thumbnail.webp", "x")
	want := writeFile(t, dir, "Sample Song [abc123].info.json", sampleInfoJSON)
	if err := os.Mkdir(filepath.Join(dir, "sub.info.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := parsing.FindInfoJSON(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	other := t.TempDir()
	only := writeFile(t, other, "whatever.json", "{}")
	got, err = parsing.FindInfoJSON(other)
	if err != nil || got != only {
		t.Fatalf("expected fallback %q, got %q (err %v)", only, got, err)
	}
}

func TestReadInfoJSON(t *testing.T) {
	t.Parallel()

	p := writeFile(t, t.TempDir(), "x.info.json", sampleInfoJSON)
	info, err := parsing.ReadInfoJSON(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Title != "Sample Song" || info.ID != "abc123" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(info.Formats) != 6 {
		t.Fatalf("expected 6 formats, got %d", len(info.Formats))
	}
	if info.Formats[0].Vcodec != "" || info.Formats[2].Acodec != "" || info.Formats[5].Resolution != "" {
		t.Fatalf("expected literal none values to be cleared: %+v", info.Formats)
	}

	video := parsing.VideoFormats(info)
	if len(video) != 2 || video[0].FormatID != "248" || video[1].FormatID != "137" {
		t.Fatalf("unexpected video formats: %+v", video)
	}
	audio := parsing.AudioFormats(info)
	if len(audio) != 2 || audio[0].FormatID != "251" || audio[1].FormatID != "140" {
		t.Fatalf("unexpected audio formats: %+v", audio)
	}

	bad := writeFile(t, t.TempDir(), "bad.info.json", "{not json")
	if _, err := parsing.ReadInfoJSON(bad); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestUploadDateAndDuration(t *testing.T) {
	t.Parallel()

	if got := parsing.UploadDate("20240315"); got != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %q", got)
	}
	if got := parsing.UploadDate("garbage"); got != "garbage" {
		t.Fatalf("expected unparseable date unchanged, got %q", got)
	}
	if got := parsing.UploadDate(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}

	tests := map[float64]string{
		0:      "",
		59.6:   "1:00",
		125:    "2:05",
		3725.4: "1:02:05",
	}
	for in, want := range tests {
		if got := parsing.Duration(in); got != want {
			t.Fatalf("Duration(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestSiteKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"https://music.youtube.com/watch?v=x": "youtube.com",
		"https://artist.bandcamp.com/track/y": "bandcamp.com",
		"https://www.bbc.co.uk/iplayer/z":     "bbc.co.uk",
		"ytsearch:some query":                 "",
		"":                                    "",
	}
	for in, want := range tests {
		if got := parsing.SiteKey(in); got != want {
			t.Fatalf("SiteKey(%q): expected %q, got %q", in, want, got)
		}
	}
}
