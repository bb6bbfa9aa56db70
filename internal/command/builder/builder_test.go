package builder_test

import (
	"reflect"
	"testing"

	"md/internal/command/builder"
	"md/internal/models"
)

func TestInfoRequestArgs(t *testing.T) {
	t.Parallel()

	c := &models.Config{URL: "https://example.com/v", Quiet: true, Verbosity: 2, Extras: []string{"--cookies-from-browser", "firefox"}}
	got, err := builder.NewInfoRequest(c, "/tmp/md-1").Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"--quiet", "--verbose",
		"--write-info-json", "--skip-download", "--no-playlist", "-P", "/tmp/md-1",
		"https://example.com/v",
		"--cookies-from-browser", "firefox",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if _, err := builder.NewInfoRequest(nil, "/tmp").Args(); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := builder.NewInfoRequest(c, "").Args(); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestDownloadRequestArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config models.Config
		intent models.DownloadIntent
		want   []string
	}{
		{
			name:   "best with defaults",
			config: models.Config{URL: "URL", Extras: []string{"--no-progress"}},
			intent: models.DownloadIntent{
				Preset: models.PresetBest, Format: "bv*+ba/b", Title: "Clip",
				EmbedChapters: true, InfoJSONPath: "/tmp/x.info.json",
			},
			want: []string{
				"--no-embed-thumbnail", "--embed-chapters",
				"--load-info-json", "/tmp/x.info.json", "--no-playlist",
				"-o", "Clip.%(ext)s", "-f", "bv*+ba/b",
				"--no-progress",
			},
		},
		{
			name:   "best audio in music dir",
			config: models.Config{URL: "URL", Quiet: true, UseXDGDirs: true},
			intent: models.DownloadIntent{
				Preset: models.PresetBestAudio, Format: "bestaudio", Title: "Song",
				EmbedThumbnail: true, InfoJSONPath: "/tmp/s.info.json", OutputDir: "/home/u/Music",
			},
			want: []string{
				"--quiet", "-P", "/home/u/Music", "-x",
				"--embed-thumbnail", "--no-embed-chapters",
				"--load-info-json", "/tmp/s.info.json", "--no-playlist",
				"-o", "Song.%(ext)s", "-f", "bestaudio",
			},
		},
		{
			name:   "custom with subtitles and verbose",
			config: models.Config{URL: "URL", Verbosity: 3, Extras: []string{"--", "-x"}},
			intent: models.DownloadIntent{
				Preset: models.PresetCustom, Format: "248+251", Title: "T",
				SubtitleLang: "en", InfoJSONPath: "/i.json",
			},
			want: []string{
				"--verbose",
				"--no-embed-thumbnail", "--no-embed-chapters",
				"--embed-subs", "--sub-langs", "en",
				"--load-info-json", "/i.json", "--no-playlist",
				"-o", "T.%(ext)s", "-f", "248+251",
				"--", "-x",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := builder.NewDownloadRequest(&tt.config, &tt.intent).Args()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDownloadRequestDeterministic(t *testing.T) {
	t.Parallel()

	c := &models.Config{URL: "URL", UseXDGDirs: true, Extras: []string{"a", "b"}}
	in := &models.DownloadIntent{Preset: models.PresetBest, Format: "bv*+ba/b", Title: "T", InfoJSONPath: "/p", OutputDir: "/v"}

	first, err := builder.NewDownloadRequest(c, in).Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := builder.NewDownloadRequest(c, in).Args()
		if err != nil || !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %q vs %q (err %v)", i, first, again, err)
		}
	}
}

func TestDownloadRequestErrors(t *testing.T) {
	t.Parallel()

	c := &models.Config{URL: "URL"}
	ok := models.DownloadIntent{Format: "b", InfoJSONPath: "/p"}

	if _, err := builder.NewDownloadRequest(nil, &ok).Args(); err == nil {
		t.Fatalf("expected error for nil config")
	}
	noFormat := ok
	noFormat.Format = ""
	if _, err := builder.NewDownloadRequest(c, &noFormat).Args(); err == nil {
		t.Fatalf("expected error for missing format")
	}
	dirs := &models.Config{URL: "URL", UseXDGDirs: true}
	if _, err := builder.NewDownloadRequest(dirs, &ok).Args(); err == nil {
		t.Fatalf("expected error for unresolved output dir")
	}
}
