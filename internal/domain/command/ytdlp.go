// Package command holds yt-dlp flag constants.
package command

// General
const (
	YTDLP             = "yt-dlp"
	Quiet             = "--quiet"
	Verbose           = "--verbose"
	P                 = "-P"
	Output            = "-o"
	Format            = "-f"
	NoPlaylist        = "--no-playlist"
	ExtractAudio      = "-x"
	LoadInfoJSON      = "--load-info-json"
	EmbedThumbnail    = "--embed-thumbnail"
	NoEmbedThumbnail  = "--no-embed-thumbnail"
	EmbedChapters     = "--embed-chapters"
	NoEmbedChapters   = "--no-embed-chapters"
	EmbedSubs         = "--embed-subs"
	SubLangs          = "--sub-langs"
	FormatIDSeparator = "+"
)

// JSON only
const (
	SkipVideo     = "--skip-download"
	WriteInfoJSON = "--write-info-json"
	InfoJSONExt   = ".info.json"
)

// Default format selectors.
const (
	SelectorBest      = "bv*+ba/b"
	SelectorBestAudio = "bestaudio"
	SelectorBestVideo = "bestvideo"
)

// DefaultThumbnailProbe is the tool whose presence makes thumbnail embedding default on for
// single-stream presets.
const DefaultThumbnailProbe = "mutagen-inspect"
