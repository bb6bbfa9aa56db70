package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"md/internal/domain/paths"
	"md/internal/models"

	"github.com/adrg/xdg"
)

func TestMediaDirOverrides(t *testing.T) {
	s := &models.Settings{AudioDir: "/srv/music", VideoDir: "/srv/video"}

	got, err := paths.MediaDir(models.PresetBestAudio, s)
	if err != nil || got != "/srv/music" {
		t.Fatalf("expected /srv/music, got %q (err %v)", got, err)
	}

	for _, p := range []models.Preset{models.PresetBest, models.PresetBestVideo, models.PresetCustom, models.PresetManual} {
		got, err := paths.MediaDir(p, s)
		if err != nil || got != "/srv/video" {
			t.Fatalf("%v: expected /srv/video, got %q (err %v)", p, got, err)
		}
	}
}

func TestMediaDirXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_MUSIC_DIR", filepath.Join(home, "Tunes"))
	t.Setenv("XDG_VIDEOS_DIR", filepath.Join(home, "Clips"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	got, err := paths.MediaDir(models.PresetBestAudio, &models.Settings{})
	if err != nil || got != filepath.Join(home, "Tunes") {
		t.Fatalf("expected XDG music dir, got %q (err %v)", got, err)
	}
	got, err = paths.MediaDir(models.PresetBest, &models.Settings{})
	if err != nil || got != filepath.Join(home, "Clips") {
		t.Fatalf("expected XDG videos dir, got %q (err %v)", got, err)
	}
}

func TestConfigFileFromEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "md.toml")
	if err := os.WriteFile(file, []byte("ytdlp = \"yt-dlp\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("MD_CONFIG", file)
	got, found, err := paths.ConfigFile()
	if err != nil || !found || got != file {
		t.Fatalf("expected %q, got %q (found %v, err %v)", file, got, found, err)
	}

	t.Setenv("MD_CONFIG", dir)
	if _, _, err := paths.ConfigFile(); err == nil {
		t.Fatalf("expected error for directory config path")
	}

	t.Setenv("MD_CONFIG", filepath.Join(dir, "missing.toml"))
	if _, _, err := paths.ConfigFile(); err == nil {
		t.Fatalf("expected error for missing config path")
	}
}

func TestConfigFileSearch(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("MD_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(cfgHome, "none"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	if _, found, err := paths.ConfigFile(); err != nil || found {
		t.Fatalf("expected no config file, got found=%v err=%v", found, err)
	}

	file := filepath.Join(cfgHome, "md", "config.toml")
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, found, err := paths.ConfigFile()
	if err != nil || !found || got != file {
		t.Fatalf("expected %q, got %q (found %v, err %v)", file, got, found, err)
	}
}
