package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/pyrite/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json")
	logger.Info().Str("component", "ledger").Msg("saved")
	require.Contains(t, buf.String(), `"component":"ledger"`)
	require.Contains(t, buf.String(), `"message":"saved"`)
}

func TestSetupWritesFile(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	path := filepath.Join(t.TempDir(), "logs", "pyrite.log")
	closer, err := Setup(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger := Component("tui")
	logger.Debug().Msg("started")
	require.NoError(t, closer.Close())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(body), `"component":"tui"`)
	require.Contains(t, string(body), "started")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}
