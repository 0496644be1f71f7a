package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/st3v3nmw/cfc/internal/logging"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "Quiet", verbose: false, wantDebug: false},
		{name: "Verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logging.Setup(&buf, tt.verbose)

			log.Debug().Str("path", "app_state.json").Msg("ignoring malformed state")
			log.Warn().Msg("something odd")

			out := buf.String()
			if got := strings.Contains(out, "ignoring malformed state"); got != tt.wantDebug {
				t.Errorf("debug line shown = %v, want %v\n%s", got, tt.wantDebug, out)
			}

			if !strings.Contains(out, "something odd") {
				t.Errorf("warning not shown:\n%s", out)
			}
		})
	}
}
