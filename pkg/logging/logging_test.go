package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger_CreatesStateLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	SetupLogger(1)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(stateHome, "hyprpier", "hyprpier.log"))
	assert.NoError(t, err)
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	file := filepath.Join(t.TempDir(), "logs", "daemon.log")
	var console bytes.Buffer

	Setup(Options{Verbosity: 1, Console: &console, File: file})
	log.Info().Str("socket", "/run/user/1000/hyprpier.sock").Msg("Daemon started")
	log.Debug().Msg("hidden at info")

	assert.Contains(t, console.String(), "Daemon started")
	assert.NotContains(t, console.String(), "hidden at info")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Daemon started"`)
	assert.Contains(t, string(data), `"socket":"/run/user/1000/hyprpier.sock"`)
}

func TestSetup_ReopensFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	Setup(Options{Console: &console, File: filepath.Join(dir, "first.log")})
	first := logFile
	Setup(Options{Console: &console, File: filepath.Join(dir, "second.log")})

	require.NotNil(t, first)
	assert.NotSame(t, first, logFile)
	assert.Error(t, first.Close(), "previous log file should already be closed")
}

func TestLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "hyprpier", "hyprpier.log"), LogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		// registered first so it runs after HOME is restored
		t.Cleanup(xdg.Reload)
		home := t.TempDir()
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", home)
		xdg.Reload()
		assert.Equal(t, filepath.Join(home, ".local", "state", "hyprpier", "hyprpier.log"), LogFilePath())
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("daemon")
	logger.Info().Msg("listening")

	assert.Contains(t, buf.String(), `"component":"daemon"`)
	assert.Contains(t, buf.String(), "listening")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "resolve")
	done()

	out := buf.String()
	require.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}
