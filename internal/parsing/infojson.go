package parsing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"md/internal/domain/command"
	"md/internal/domain/errconsts"
	"md/internal/models"
)

const ytdlpNone = "none"

// FindInfoJSON returns the info JSON yt-dlp wrote into dir. A *.info.json file is preferred;
// otherwise the first regular file is used.
func FindInfoJSON(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var fallback string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.HasSuffix(e.Name(), command.InfoJSONExt) {
			return filepath.Join(dir, e.Name()), nil
		}
		if fallback == "" {
			fallback = filepath.Join(dir, e.Name())
		}
	}

	if fallback == "" {
		return "", fmt.Errorf(errconsts.InfoJSONMissing, dir)
	}
	return fallback, nil
}

// ReadInfoJSON decodes an info JSON file.
func ReadInfoJSON(path string) (*models.InfoJSON, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	var info models.InfoJSON
	if err := json.NewDecoder(f).Decode(&info); err != nil {
		return nil, fmt.Errorf("unable to read the info JSON file %q: %w", path, err)
	}

	for i := range info.Formats {
		fm := &info.Formats[i]
		if fm.Acodec == ytdlpNone {
			fm.Acodec = ""
		}
		if fm.Vcodec == ytdlpNone {
			fm.Vcodec = ""
		}
		if fm.Resolution == ytdlpNone {
			fm.Resolution = ""
		}
	}
	return &info, nil
}

// VideoFormats returns the video-only formats, widest first.
func VideoFormats(info *models.InfoJSON) []models.Format {
	var out []models.Format
	for _, f := range info.Formats {
		if f.VideoOnly() {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Width > out[j].Width })
	return out
}

// AudioFormats returns the audio-only formats, highest sample rate first.
func AudioFormats(info *models.InfoJSON) []models.Format {
	var out []models.Format
	for _, f := range info.Formats {
		if f.AudioOnly() {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Asr > out[j].Asr })
	return out
}
