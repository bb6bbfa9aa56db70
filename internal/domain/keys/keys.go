// Package keys holds the Viper keys used for flags and settings.
package keys

// Terminal keys
const (
	Verbose string = "verbose"
	Quiet   string = "quiet"
	Preset  string = "preset"
	Dirs    string = "dirs"
	Version string = "version"
)

// Settings keys
const (
	YtDlpPath      string = "ytdlp"
	SubtitleLang   string = "subtitle-lang"
	AudioDir       string = "audio-dir"
	VideoDir       string = "video-dir"
	ThumbnailProbe string = "thumbnail-probe"
	Formats        string = "formats"
	Sites          string = "sites"
)

// Environment
const (
	EnvPrefix     string = "MD"
	EnvConfigFile string = "MD_CONFIG"
)

// FormatKey returns the settings key holding the format selector for a preset token.
func FormatKey(preset string) string {
	return Formats + "." + preset
}
