package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureGetWritesJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})

	lgr := Get()
	lgr.Debug().Str("username", "Ana").Msg("aluno created")
	if out := buf.String(); !strings.Contains(out, `"username":"Ana"`) || !strings.Contains(out, `"level":"debug"`) {
		t.Fatalf("expected debug JSON line, got %q", out)
	}

	Configure(ConfigFrom("warn", "json"))
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", zerolog.GlobalLevel())
	}
}
