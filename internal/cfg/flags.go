package cfg

import (
	"fmt"

	"md/internal/domain/errconsts"
	"md/internal/domain/keys"
	"md/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags registers the command-line flags and binds them into v.
func initProgramFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	f := rootCmd.Flags()

	// Verbosity
	f.CountP(keys.Verbose, "v", "Verbosity")
	if err := v.BindPFlag(keys.Verbose, f.Lookup(keys.Verbose)); err != nil {
		return err
	}

	// Quiet yt-dlp
	f.Bool(keys.Quiet, false, "Make yt-dlp output quiet")
	if err := v.BindPFlag(keys.Quiet, f.Lookup(keys.Quiet)); err != nil {
		return err
	}

	// Preset
	f.VarP(new(presetValue), keys.Preset, "p", "Preset to use {custom|best|best-audio|best-video}")
	if err := v.BindPFlag(keys.Preset, f.Lookup(keys.Preset)); err != nil {
		return err
	}

	// XDG dirs
	f.BoolP(keys.Dirs, "d", false, "Use XDG-dirs (~/Music or ~/Videos)")
	if err := v.BindPFlag(keys.Dirs, f.Lookup(keys.Dirs)); err != nil {
		return err
	}

	// Version; cobra prints it when set
	f.BoolP(keys.Version, "V", false, "Print version")
	return nil
}

// presetValue is a pflag.Value accepting command-line preset tokens.
type presetValue struct {
	preset models.Preset
	set    bool
}

func (p *presetValue) Set(s string) error {
	preset, err := models.ParsePreset(s)
	if err != nil {
		return fmt.Errorf(errconsts.InvalidPreset, s)
	}
	p.preset, p.set = preset, true
	return nil
}

func (p *presetValue) String() string {
	if !p.set {
		return ""
	}
	return p.preset.String()
}

func (p *presetValue) Type() string {
	return "preset"
}
