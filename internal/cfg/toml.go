package cfg

import (
	"fmt"
	"os"

	"md/internal/domain/keys"
	"md/internal/models"
	"md/internal/utils/logging"

	"github.com/BurntSushi/toml"
)

// fileSettings is the config file layout. Pointer fields distinguish absent keys from empty ones.
type fileSettings struct {
	YtDlp          *string           `toml:"ytdlp"`
	SubtitleLang   *string           `toml:"subtitle-lang"`
	AudioDir       *string           `toml:"audio-dir"`
	VideoDir       *string           `toml:"video-dir"`
	ThumbnailProbe *string           `toml:"thumbnail-probe"`
	Formats        map[string]string `toml:"formats"`
	Sites          map[string]string `toml:"sites"`
}

// loadConfigFile decodes the TOML config file into a Viper config map and the site preset table.
func loadConfigFile(path string) (map[string]any, map[string]models.Preset, error) {
	checkPath, err := os.Stat(path)
	switch {
	case err != nil:
		return nil, nil, err
	case checkPath.IsDir():
		return nil, nil, fmt.Errorf("toml file passed in as directory '%s', should be file", path)
	case !checkPath.Mode().IsRegular():
		return nil, nil, fmt.Errorf("'%s' is not a regular file", path)
	}

	var fs fileSettings
	md, err := toml.DecodeFile(path, &fs)
	if err != nil {
		return nil, nil, err
	}
	for _, k := range md.Undecoded() {
		logging.W("Ignoring unknown key %q in config file %q", k.String(), path)
	}

	m := make(map[string]any)
	setIfPresent(m, keys.YtDlpPath, fs.YtDlp)
	setIfPresent(m, keys.SubtitleLang, fs.SubtitleLang)
	setIfPresent(m, keys.AudioDir, fs.AudioDir)
	setIfPresent(m, keys.VideoDir, fs.VideoDir)
	setIfPresent(m, keys.ThumbnailProbe, fs.ThumbnailProbe)

	if len(fs.Formats) > 0 {
		formats := make(map[string]any, len(fs.Formats))
		for token, sel := range fs.Formats {
			p, err := models.ParsePreset(token)
			if err != nil || !p.HasSelector() {
				return nil, nil, fmt.Errorf("[%s] has no preset %q (valid: best, best-audio, best-video)", keys.Formats, token)
			}
			formats[token] = sel
		}
		m[keys.Formats] = formats
	}

	sites := make(map[string]models.Preset, len(fs.Sites))
	for site, token := range fs.Sites {
		p, err := models.ParseAnyPreset(token)
		if err != nil {
			return nil, nil, fmt.Errorf("[%s] %q: %w", keys.Sites, site, err)
		}
		sites[site] = p
	}
	return m, sites, nil
}

func setIfPresent(m map[string]any, key string, val *string) {
	if val != nil {
		m[key] = *val
	}
}
