package models

// Settings holds program settings resolved from defaults, the config file and the environment.
type Settings struct {
	YtDlpPath      string
	Formats        map[Preset]string
	SitePresets    map[string]Preset
	AudioDir       string
	VideoDir       string
	SubtitleLang   string
	ThumbnailProbe string
}

// Selector returns the format selector configured for a preset.
func (s *Settings) Selector(p Preset) (string, bool) {
	sel, ok := s.Formats[p]
	return sel, ok && sel != ""
}
