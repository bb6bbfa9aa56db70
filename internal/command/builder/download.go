package builder

import (
	"errors"

	"md/internal/domain/command"
	"md/internal/domain/consts"
	"md/internal/models"
	"md/internal/utils/logging"
)

// DownloadRequest builds the final yt-dlp call from the parsed command line and the user's choices.
type DownloadRequest struct {
	Config *models.Config
	Intent *models.DownloadIntent
}

// NewDownloadRequest returns a download request.
func NewDownloadRequest(c *models.Config, in *models.DownloadIntent) *DownloadRequest {
	return &DownloadRequest{
		Config: c,
		Intent: in,
	}
}

// Args returns the yt-dlp argument list. The order is fixed and extras always come last.
func (r *DownloadRequest) Args() ([]string, error) {
	if r.Config == nil || r.Intent == nil {
		return nil, errors.New("config or intent passed in null, returning no command")
	}
	c, in := r.Config, r.Intent

	if in.Format == "" {
		return nil, errors.New("no format selected")
	}
	if in.InfoJSONPath == "" {
		return nil, errors.New("no info JSON to load")
	}

	args := verbosityArgs(c)

	if c.UseXDGDirs {
		if in.OutputDir == "" {
			return nil, errors.New("XDG dirs requested but no output directory resolved")
		}
		args = append(args, command.P, in.OutputDir)
	}

	if in.Preset == models.PresetBestAudio {
		args = append(args, command.ExtractAudio)
	}

	if in.EmbedThumbnail {
		args = append(args, command.EmbedThumbnail)
	} else {
		args = append(args, command.NoEmbedThumbnail)
	}

	if in.EmbedChapters {
		args = append(args, command.EmbedChapters)
	} else {
		args = append(args, command.NoEmbedChapters)
	}

	if in.SubtitleLang != "" {
		args = append(args, command.EmbedSubs, command.SubLangs, in.SubtitleLang)
	}

	args = append(args,
		command.LoadInfoJSON, in.InfoJSONPath,
		command.NoPlaylist,
		command.Output, in.Title+consts.OutputTemplateSuffix,
		command.Format, in.Format,
	)
	args = append(args, c.Extras...)

	logging.D(1, "Built argument list: %v", args)
	return args, nil
}
