package models

// DownloadIntent is what the user chose for one download.
type DownloadIntent struct {
	Preset         Preset
	Format         string
	Title          string
	EmbedThumbnail bool
	EmbedChapters  bool
	SubtitleLang   string
	InfoJSONPath   string
	OutputDir      string // empty unless XDG dirs were requested
}
