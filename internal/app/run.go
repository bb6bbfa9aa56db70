// Package app wires the info fetch, the prompt flow and the final yt-dlp run together.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"md/internal/command/builder"
	"md/internal/command/execute"
	"md/internal/domain/paths"
	"md/internal/models"
	"md/internal/utils/logging"
	"md/internal/utils/print"
	"md/internal/utils/prompt"
)

// Run performs one md invocation: fetch the info JSON, resolve the user's choices and run the
// download. Summaries are written to out.
func Run(ctx context.Context, c *models.Config, s *models.Settings, p prompt.Prompter, r execute.Runner, out io.Writer) error {
	tmp, err := os.MkdirTemp("", "md-")
	if err != nil {
		return fmt.Errorf("couldn't create the temporary directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmp); err != nil {
			logging.W("Failed to remove temporary directory %q: %v", tmp, err)
		}
	}()

	info, infoPath, err := FetchInfo(ctx, r, s.YtDlpPath, c, tmp)
	if err != nil {
		return err
	}
	print.MediaSummary(out, info)

	flow := &Flow{Prompter: p, Settings: s}
	intent, err := flow.Resolve(ctx, c, info, infoPath)
	if err != nil {
		return err
	}

	if c.UseXDGDirs {
		if intent.OutputDir, err = paths.MediaDir(intent.Preset, s); err != nil {
			return err
		}
	}

	args, err := builder.NewDownloadRequest(c, intent).Args()
	if err != nil {
		return err
	}

	if err := r.Run(ctx, s.YtDlpPath, args); err != nil {
		return fmt.Errorf("downloading: %w", err)
	}

	logging.S("Downloaded %q", intent.Title)
	return nil
}
