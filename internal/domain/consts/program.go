// Package consts holds program-wide constant values.
package consts

import "time"

// Program identity.
const (
	ProgramName = "md"
	Version     = "0.3.0"
)

// Exit statuses.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitNotFound    = 127
	ExitInterrupted = 130
)

// InterruptGrace is how long a child gets to exit after an interrupt before it is killed.
const InterruptGrace = 5 * time.Second

// OutputTemplateSuffix is appended to the chosen title to form the yt-dlp output template.
const OutputTemplateSuffix = ".%(ext)s"

// MusicCategory is the info JSON category that puts "best audio" first in the preset menu.
const MusicCategory = "music"
