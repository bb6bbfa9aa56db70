// Package paths resolves md's config file and media directories.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"md/internal/domain/keys"
	"md/internal/models"

	"github.com/adrg/xdg"
)

const (
	mdDir      = "md"
	configFile = "config.toml"
)

// ConfigFile returns the settings file to load.
//
// MD_CONFIG wins and must exist. Otherwise md/config.toml is searched in the XDG config
// directories; found is false when there is none.
func ConfigFile() (path string, found bool, err error) {
	if p := os.Getenv(keys.EnvConfigFile); p != "" {
		info, err := os.Stat(p)
		switch {
		case err != nil:
			return "", false, fmt.Errorf("config file from %s: %w", keys.EnvConfigFile, err)
		case info.IsDir():
			return "", false, fmt.Errorf("config file %q is a directory, should be a file", p)
		}
		return p, true, nil
	}

	p, err := xdg.SearchConfigFile(filepath.Join(mdDir, configFile))
	if err != nil {
		return "", false, nil
	}
	return p, true, nil
}

// MediaDir returns the output directory for a preset: the music directory for best-audio and
// the videos directory for everything else. Settings overrides win over XDG user dirs.
func MediaDir(p models.Preset, s *models.Settings) (string, error) {
	var dir, kind string
	if p == models.PresetBestAudio {
		kind = "audio"
		dir = s.AudioDir
		if dir == "" {
			dir = xdg.UserDirs.Music
		}
	} else {
		kind = "video"
		dir = s.VideoDir
		if dir == "" {
			dir = xdg.UserDirs.Videos
		}
	}

	if dir == "" {
		return "", errors.New("couldn't get the " + kind + " directory")
	}
	return dir, nil
}
