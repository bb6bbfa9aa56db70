// Package errconsts holds constant error messages
package errconsts

// Programs
const (
	YTDLPFailure    = "yt-dlp command failed: %w"
	YTDLPNotFound   = "%s not found in PATH: %w"
	InfoJSONMissing = "yt-dlp wrote no info JSON to %q"
)

// Usage
const (
	MissingURL      = "missing required argument <URL>"
	ExtraPositional = "unexpected argument %q (pass extra yt-dlp arguments after '--')"
	InvalidPreset   = "invalid preset %q (valid: custom, best, best-audio, best-video)"
)

// Input
const (
	NotInteractive = "standard input is not a terminal, cannot prompt for %q"
	InputClosed    = "standard input closed while prompting for %q"
	NoAnswer       = "no scripted answer left for %q"
)

// File
const (
	ConfigFileLoadFail = "failed to load config file %q: %w"
)
