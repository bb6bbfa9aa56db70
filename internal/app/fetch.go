package app

import (
	"context"
	"fmt"

	"md/internal/command/builder"
	"md/internal/command/execute"
	"md/internal/models"
	"md/internal/parsing"
	"md/internal/utils/logging"
)

// FetchInfo has yt-dlp write the media's info JSON into dir and decodes it.
func FetchInfo(ctx context.Context, r execute.Runner, tool string, c *models.Config, dir string) (*models.InfoJSON, string, error) {
	args, err := builder.NewInfoRequest(c, dir).Args()
	if err != nil {
		return nil, "", err
	}

	logging.I("Fetching media information for %q", c.URL)
	if err := r.Run(ctx, tool, args); err != nil {
		return nil, "", fmt.Errorf("fetching media information: %w", err)
	}

	path, err := parsing.FindInfoJSON(dir)
	if err != nil {
		return nil, "", err
	}
	info, err := parsing.ReadInfoJSON(path)
	if err != nil {
		return nil, "", err
	}

	logging.D(1, "Loaded info JSON %q (%d formats)", path, len(info.Formats))
	return info, path, nil
}
