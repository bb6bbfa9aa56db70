// Package cfg provides the command-line interface and settings loading for md.
package cfg

import (
	"errors"
	"fmt"
	"io"

	"md/internal/domain/consts"
	"md/internal/domain/errconsts"
	"md/internal/domain/errs"
	"md/internal/domain/keys"
	"md/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrNoRun is returned by Parse when help or version output was requested and printed.
var ErrNoRun = errors.New("nothing to run")

const usageTemplate = `Usage:
  {{.UseLine}}

Arguments:
  <URL>        Url of the media to download
  [EXTRAS]...  Extra arguments to pass to yt-dlp

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`

// Parse parses the raw argument list (without the program name) into a Config.
//
// Usage problems are returned as *errs.UsageError after the usage text is written to errOut.
func Parse(args []string, out, errOut io.Writer) (*models.Config, error) {
	if args == nil {
		args = []string{}
	}

	var parsed *models.Config
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:     consts.ProgramName + " [OPTIONS] <URL> [-- <EXTRAS>...]",
		Short:   "Interactively pick download options, then run yt-dlp.",
		Version: consts.Version,
		Args:    cobra.ArbitraryArgs,

		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildConfig(v, cmd.Flags(), args, cmd.ArgsLenAtDash())
			if err != nil {
				return err
			}
			parsed = c
			return nil
		},
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &errs.UsageError{Err: err}
	})

	if err := initProgramFlags(rootCmd, v); err != nil {
		return nil, err
	}

	if err := rootCmd.Execute(); err != nil {
		var usageErr *errs.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(errOut, rootCmd.UsageString())
		}
		return nil, err
	}

	if parsed == nil {
		return nil, ErrNoRun
	}
	return parsed, nil
}

// buildConfig assembles the Config from bound flag values and positional arguments.
func buildConfig(v *viper.Viper, flags *pflag.FlagSet, args []string, dashAt int) (*models.Config, error) {
	positional, extras := args, []string(nil)
	if dashAt >= 0 {
		positional, extras = args[:dashAt], args[dashAt:]
	}

	switch {
	case len(positional) == 0:
		return nil, errs.Usagef(errconsts.MissingURL)
	case len(positional) > 1:
		return nil, errs.Usagef(errconsts.ExtraPositional, positional[1])
	}

	c := &models.Config{
		URL:        positional[0],
		Verbosity:  v.GetInt(keys.Verbose),
		Quiet:      v.GetBool(keys.Quiet),
		UseXDGDirs: v.GetBool(keys.Dirs),
		Extras:     append([]string{}, extras...),
	}

	if flags.Changed(keys.Preset) {
		p, err := models.ParsePreset(v.GetString(keys.Preset))
		if err != nil {
			return nil, errs.Usagef(errconsts.InvalidPreset, v.GetString(keys.Preset))
		}
		c.Preset = &p
	}
	return c, nil
}
