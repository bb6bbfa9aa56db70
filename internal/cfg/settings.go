package cfg

import (
	"fmt"
	"strings"

	"md/internal/cfg/presets"
	"md/internal/domain/command"
	"md/internal/domain/errconsts"
	"md/internal/domain/errs"
	"md/internal/domain/keys"
	"md/internal/domain/paths"
	"md/internal/models"
	"md/internal/utils/logging"

	"github.com/spf13/viper"
)

// LoadSettings resolves program settings. MD_* environment variables override the config
// file, which overrides built-in defaults.
func LoadSettings() (*models.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(keys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	initSettingsDefaults(v)

	path, found, err := paths.ConfigFile()
	if err != nil {
		return nil, &errs.UsageError{Err: err}
	}

	var sites map[string]models.Preset
	if found {
		logging.D(1, "Loading config file %q", path)
		fileMap, fileSites, err := loadConfigFile(path)
		if err != nil {
			return nil, &errs.UsageError{Err: fmt.Errorf(errconsts.ConfigFileLoadFail, path, err)}
		}
		if err := v.MergeConfigMap(fileMap); err != nil {
			return nil, &errs.UsageError{Err: fmt.Errorf(errconsts.ConfigFileLoadFail, path, err)}
		}
		sites = fileSites
	}

	return settingsFromViper(v, sites), nil
}

// initSettingsDefaults sets the built-in settings.
func initSettingsDefaults(v *viper.Viper) {
	v.SetDefault(keys.YtDlpPath, command.YTDLP)
	v.SetDefault(keys.ThumbnailProbe, command.DefaultThumbnailProbe)
	v.SetDefault(keys.SubtitleLang, "")
	v.SetDefault(keys.AudioDir, "")
	v.SetDefault(keys.VideoDir, "")

	for p, sel := range presets.DefaultFormats() {
		v.SetDefault(keys.FormatKey(p.String()), sel)
	}
}

func settingsFromViper(v *viper.Viper, sites map[string]models.Preset) *models.Settings {
	s := &models.Settings{
		YtDlpPath:      v.GetString(keys.YtDlpPath),
		Formats:        make(map[models.Preset]string),
		SitePresets:    sites,
		AudioDir:       v.GetString(keys.AudioDir),
		VideoDir:       v.GetString(keys.VideoDir),
		SubtitleLang:   v.GetString(keys.SubtitleLang),
		ThumbnailProbe: v.GetString(keys.ThumbnailProbe),
	}
	if s.SitePresets == nil {
		s.SitePresets = make(map[string]models.Preset)
	}

	for p := range presets.DefaultFormats() {
		s.Formats[p] = v.GetString(keys.FormatKey(p.String()))
	}

	logging.D(2, "Resolved settings: %+v", *s)
	return s
}
