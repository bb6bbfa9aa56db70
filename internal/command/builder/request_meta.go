package builder

import (
	"errors"

	"md/internal/domain/command"
	"md/internal/models"
	"md/internal/utils/logging"
)

// InfoRequest builds the yt-dlp call that writes the media's info JSON without downloading it.
type InfoRequest struct {
	Config *models.Config
	Dir    string
}

// NewInfoRequest returns an info request writing into dir.
func NewInfoRequest(c *models.Config, dir string) *InfoRequest {
	return &InfoRequest{
		Config: c,
		Dir:    dir,
	}
}

// Args returns the yt-dlp argument list.
func (r *InfoRequest) Args() ([]string, error) {
	if r.Config == nil {
		return nil, errors.New("config passed in null, returning no command")
	}
	if r.Dir == "" {
		return nil, errors.New("no directory to write the info JSON to")
	}

	c := r.Config
	args := verbosityArgs(c)
	args = append(args, command.WriteInfoJSON, command.SkipVideo, command.NoPlaylist, command.P, r.Dir)
	args = append(args, c.URL)
	args = append(args, c.Extras...)

	logging.D(2, "Built info argument list: %v", args)
	return args, nil
}

// verbosityArgs passes --quiet through, and --verbose from -vv up.
func verbosityArgs(c *models.Config) []string {
	var args []string
	if c.Quiet {
		args = append(args, command.Quiet)
	}
	if c.Verbosity >= 2 {
		args = append(args, command.Verbose)
	}
	return args
}
