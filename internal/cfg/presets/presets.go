// Package presets holds the built-in preset tables and the preset menu ordering.
package presets

import (
	"md/internal/domain/command"
	"md/internal/domain/consts"
	"md/internal/models"

	"golang.org/x/text/cases"
)

// DefaultFormats maps presets to the yt-dlp format selectors used when settings don't override them.
func DefaultFormats() map[models.Preset]string {
	return map[models.Preset]string{
		models.PresetBest:      command.SelectorBest,
		models.PresetBestAudio: command.SelectorBestAudio,
		models.PresetBestVideo: command.SelectorBestVideo,
	}
}

// IsMusic reports whether the media is in the music category.
func IsMusic(categories []string) bool {
	fold := cases.Fold()
	want := fold.String(consts.MusicCategory)
	for _, c := range categories {
		if fold.String(c) == want {
			return true
		}
	}
	return false
}

// MenuOrder returns the preset menu for a download. A site preset is listed first; failing
// that, best-audio is listed first for music.
func MenuOrder(categories []string, site string, sitePresets map[string]models.Preset) []models.Preset {
	first, ok := lookupSite(site, sitePresets)
	if !ok && IsMusic(categories) {
		first, ok = models.PresetBestAudio, true
	}
	if !ok {
		return append([]models.Preset(nil), models.MenuPresets...)
	}

	out := []models.Preset{first}
	for _, p := range models.MenuPresets {
		if p != first {
			out = append(out, p)
		}
	}
	return out
}

func lookupSite(site string, sitePresets map[string]models.Preset) (models.Preset, bool) {
	if site == "" || len(sitePresets) == 0 {
		return 0, false
	}
	fold := cases.Fold()
	site = fold.String(site)
	for k, p := range sitePresets {
		if fold.String(k) == site {
			return p, true
		}
	}
	return 0, false
}
