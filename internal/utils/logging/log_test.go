package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"md/internal/utils/logging"

	"github.com/rs/zerolog"
)

func TestLevelFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbosity int
		quiet     bool
		want      zerolog.Level
	}{
		{0, false, zerolog.WarnLevel},
		{1, false, zerolog.DebugLevel},
		{2, false, zerolog.TraceLevel},
		{5, false, zerolog.TraceLevel},
		{3, true, zerolog.ErrorLevel},
		{0, true, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := logging.LevelFor(tt.verbosity, tt.quiet); got != tt.want {
			t.Fatalf("LevelFor(%d, %v): expected %v, got %v", tt.verbosity, tt.quiet, tt.want, got)
		}
	}
}

func TestLevelledOutput(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.Setup(0, false) })

	logging.Setup(0, false)
	logging.D(1, "hidden %s", "debug")
	logging.W("shown %s", "warning")

	out := buf.String()
	if strings.Contains(out, "hidden debug") {
		t.Fatalf("debug message logged at default level: %q", out)
	}
	if !strings.Contains(out, "shown warning") {
		t.Fatalf("expected warning in output, got %q", out)
	}

	buf.Reset()
	logging.Setup(1, false)
	logging.D(1, "visible debug")
	logging.D(2, "hidden trace")
	out = buf.String()
	if !strings.Contains(out, "visible debug") || strings.Contains(out, "hidden trace") {
		t.Fatalf("unexpected output at -v: %q", out)
	}
}
