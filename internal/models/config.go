package models

// Config is the parsed command line. It is not modified after parsing.
type Config struct {
	URL        string
	Preset     *Preset // nil when not pinned by -p
	Verbosity  int
	Quiet      bool
	UseXDGDirs bool
	Extras     []string
}

// PinnedPreset returns the preset given with -p, if any.
func (c *Config) PinnedPreset() (Preset, bool) {
	if c.Preset == nil {
		return 0, false
	}
	return *c.Preset, true
}
