package models

import (
	"fmt"
	"strings"
)

// Preset is a named format-selection policy.
type Preset int

const (
	PresetCustom Preset = iota
	PresetManual
	PresetBest
	PresetBestAudio
	PresetBestVideo
)

// CLIPresets are the presets accepted by -p/--preset, in help order.
var CLIPresets = []Preset{PresetCustom, PresetBest, PresetBestAudio, PresetBestVideo}

// MenuPresets is the default interactive menu order.
var MenuPresets = []Preset{PresetCustom, PresetBest, PresetBestAudio, PresetBestVideo, PresetManual}

// String returns the token used on the command line and in settings files.
func (p Preset) String() string {
	switch p {
	case PresetCustom:
		return "custom"
	case PresetManual:
		return "manual"
	case PresetBest:
		return "best"
	case PresetBestAudio:
		return "best-audio"
	case PresetBestVideo:
		return "best-video"
	default:
		return fmt.Sprintf("preset(%d)", int(p))
	}
}

// Label returns the name shown in the interactive menu.
func (p Preset) Label() string {
	return strings.ReplaceAll(p.String(), "-", " ")
}

// HasSelector reports whether the preset maps straight to a format selector.
func (p Preset) HasSelector() bool {
	return p == PresetBest || p == PresetBestAudio || p == PresetBestVideo
}

// ParsePreset parses a command-line preset token.
//
// Manual is menu-only and rejected here.
func ParsePreset(s string) (Preset, error) {
	for _, p := range CLIPresets {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown preset %q", s)
}

// ParseAnyPreset parses any preset token, including menu-only ones.
func ParseAnyPreset(s string) (Preset, error) {
	if s == PresetManual.String() {
		return PresetManual, nil
	}
	return ParsePreset(s)
}
