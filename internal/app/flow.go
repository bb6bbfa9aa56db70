package app

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"md/internal/cfg/presets"
	"md/internal/domain/command"
	"md/internal/models"
	"md/internal/parsing"
	"md/internal/utils/logging"
	"md/internal/utils/print"
	"md/internal/utils/prompt"
)

// Prompt texts.
const (
	AskPreset      = "Which preset do you want to use?"
	AskVideoFormat = "Which video format do you want?"
	AskAudioFormat = "Which audio format do you want?"
	AskManual      = "Format?"
	AskTitle       = "Title?"
	AskThumbnail   = "Embed thumbnail?"
	AskChapters    = "Embed chapters?"
	AskSubtitles   = "Subtitle language? (empty for none)"
)

// Flow turns a Config into a DownloadIntent by asking the user for whatever flags left open.
type Flow struct {
	Prompter prompt.Prompter
	Settings *models.Settings

	// LookPath reports whether helper tools are installed; exec.LookPath when nil.
	LookPath func(string) (string, error)
}

// Resolve runs the prompts in order: preset, format, title, thumbnail, chapters, subtitles.
func (f *Flow) Resolve(ctx context.Context, c *models.Config, info *models.InfoJSON, infoPath string) (*models.DownloadIntent, error) {
	if info == nil {
		info = &models.InfoJSON{}
	}

	p, err := f.choosePreset(ctx, c, info)
	if err != nil {
		return nil, err
	}

	in := &models.DownloadIntent{Preset: p, InfoJSONPath: infoPath}

	if in.Format, err = f.chooseFormat(ctx, p, info); err != nil {
		return nil, err
	}

	if in.Title, err = f.Prompter.Text(ctx, AskTitle, info.Title); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, errors.New("empty title")
	}

	if in.EmbedThumbnail, err = f.Prompter.Confirm(ctx, AskThumbnail, f.thumbnailDefault(p)); err != nil {
		return nil, err
	}

	if p != models.PresetBestAudio {
		def := p == models.PresetBest || p == models.PresetBestVideo
		if in.EmbedChapters, err = f.Prompter.Confirm(ctx, AskChapters, def); err != nil {
			return nil, err
		}

		if in.SubtitleLang, err = f.Prompter.Text(ctx, AskSubtitles, f.Settings.SubtitleLang); err != nil {
			return nil, err
		}
	}

	logging.D(1, "Resolved download intent: %+v", *in)
	return in, nil
}

// choosePreset returns the pinned preset, or asks for one.
func (f *Flow) choosePreset(ctx context.Context, c *models.Config, info *models.InfoJSON) (models.Preset, error) {
	if p, ok := c.PinnedPreset(); ok {
		logging.D(1, "Preset pinned to %q", p)
		return p, nil
	}

	order := presets.MenuOrder(info.Categories, parsing.SiteKey(c.URL), f.Settings.SitePresets)
	labels := make([]string, len(order))
	for i, p := range order {
		labels[i] = p.Label()
	}

	idx, err := f.Prompter.Choose(ctx, AskPreset, labels, 0)
	if err != nil {
		return 0, err
	}
	return order[idx], nil
}

// chooseFormat resolves the yt-dlp format selector for a preset.
func (f *Flow) chooseFormat(ctx context.Context, p models.Preset, info *models.InfoJSON) (string, error) {
	switch p {
	case models.PresetCustom:
		return f.chooseCustom(ctx, info)
	case models.PresetManual:
		format, err := f.Prompter.Text(ctx, AskManual, "")
		if err != nil {
			return "", err
		}
		if format == "" {
			return "", errors.New("no format entered")
		}
		return format, nil
	default:
		sel, ok := f.Settings.Selector(p)
		if !ok {
			return "", fmt.Errorf("no format selector configured for preset %q", p)
		}
		return sel, nil
	}
}

// chooseCustom asks for a video-only and an audio-only format id and joins them.
// A side with no formats to offer is skipped.
func (f *Flow) chooseCustom(ctx context.Context, info *models.InfoJSON) (string, error) {
	var ids []string

	if video := parsing.VideoFormats(info); len(video) > 0 {
		labels := make([]string, len(video))
		for i := range video {
			labels[i] = print.VideoFormatLabel(&video[i])
		}
		idx, err := f.Prompter.Choose(ctx, AskVideoFormat, labels, 0)
		if err != nil {
			return "", err
		}
		ids = append(ids, video[idx].FormatID)
	}

	if audio := parsing.AudioFormats(info); len(audio) > 0 {
		labels := make([]string, len(audio))
		for i := range audio {
			labels[i] = print.AudioFormatLabel(&audio[i])
		}
		idx, err := f.Prompter.Choose(ctx, AskAudioFormat, labels, 0)
		if err != nil {
			return "", err
		}
		ids = append(ids, audio[idx].FormatID)
	}

	if len(ids) == 0 {
		return "", errors.New("no separate video or audio formats to pick from, use the manual preset")
	}
	return strings.Join(ids, command.FormatIDSeparator), nil
}

// thumbnailDefault is on for single-stream presets when the probe tool is installed.
func (f *Flow) thumbnailDefault(p models.Preset) bool {
	if p != models.PresetBestAudio && p != models.PresetBestVideo {
		return false
	}
	if f.Settings.ThumbnailProbe == "" {
		return false
	}
	lookPath := f.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(f.Settings.ThumbnailProbe)
	return err == nil
}
