package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/logger"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				ServiceName: "test",
				AppName:     "test",
			},
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console writer trace",
			cfg: logger.Log{
				LogLevel:    "trace",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "json trace with caller and stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := captureOutput(t, tc.cfg)

			if !tc.shouldHaveOutPut {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)
			assert.Contains(t, out, "this info message should be seen")

			if !tc.outPutIsJSON {
				return
			}

			for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
				assert.Equal(t, "test", entry["app"])
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "loud", ServiceName: "s", AppName: "a"})
	require.Error(t, err)

	err = logger.Init(logger.Log{LogLevel: "info", AppName: "a"})
	require.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)

	err = logger.Init(logger.Log{LogLevel: "info", ServiceName: "s"})
	require.ErrorIs(t, err, logger.ErrAppNameIsEmpty)
}

func TestFileLogging(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	err := logger.Init(logger.Log{
		LogLevel:    "debug",
		ServiceName: "test",
		AppName:     "test",
		File: logger.LogFile{
			Enabled: true,
			Path:    dir,
			Error:   logger.RollingFile{Name: "error.log", MaxSize: 1},
			Info:    logger.RollingFile{Name: "info.log", MaxSize: 1},
			Trace:   logger.RollingFile{Name: "trace.log", MaxSize: 1},
			Warn:    logger.RollingFile{Name: "warn.log", MaxSize: 1},
		},
	})
	require.NoError(t, err)

	log.Info().Msg("to info")
	log.Warn().Msg("to warn")
	log.Error().Err(errors.New("boom")).Msg("to error")

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "to info")
	assert.NotContains(t, string(info), "to error")

	warn, err := os.ReadFile(filepath.Join(dir, "warn.log"))
	require.NoError(t, err)
	assert.Contains(t, string(warn), "to warn")

	errLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errLog), "boom")
}

func TestLevelWriter(t *testing.T) {
	var info, warn, errs, trace bytes.Buffer

	lw := &logger.LevelWriter{InfoWriter: &info, WarnWriter: &warn, ErrorWriter: &errs, TraceWriter: &trace}

	for level, msg := range map[zerolog.Level]string{
		zerolog.DebugLevel: "debug",
		zerolog.InfoLevel:  "info",
		zerolog.WarnLevel:  "warn",
		zerolog.ErrorLevel: "error",
		zerolog.FatalLevel: "fatal",
		zerolog.TraceLevel: "trace",
		zerolog.Disabled:   "disabled",
	} {
		_, err := lw.WriteLevel(level, []byte(msg+"\n"))
		require.NoError(t, err)
	}

	assert.Equal(t, 2, strings.Count(info.String(), "\n"))
	assert.Equal(t, "warn\n", warn.String())
	assert.Equal(t, 2, strings.Count(errs.String(), "\n"))
	assert.Equal(t, "trace\n", trace.String())
}

func TestLevelWriterWithoutTarget(t *testing.T) {
	lw := &logger.LevelWriter{}

	n, err := lw.WriteLevel(zerolog.InfoLevel, []byte("dropped"))
	require.NoError(t, err)
	assert.Equal(t, len("dropped"), n)
}

func captureOutput(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = w, w

	require.NoError(t, logger.Init(cfg))

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(errors.New("a test error")).Msg("this err message should be seen...")

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout, os.Stderr = stdout, stderr

	return <-outC
}
