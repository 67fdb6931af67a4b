package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setFlag overrides a global flag for the duration of the test.
func setFlag[T any](t *testing.T, flag *T, value T) {
	t.Helper()
	old := *flag
	*flag = value
	t.Cleanup(func() { *flag = old })
}

// captureLogFile records the file newLogger opens.
func captureLogFile(t *testing.T) **os.File {
	t.Helper()
	var opened *os.File
	orig := openLogFile
	openLogFile = func(path string) (*os.File, error) {
		f, err := orig(path)
		opened = f
		return f, err
	}
	t.Cleanup(func() { openLogFile = orig })
	return &opened
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	setFlag(t, &flagLogLevel, "loud")
	setFlag(t, &flagLogFile, filepath.Join(t.TempDir(), "never.log"))
	opened := captureLogFile(t)

	if _, _, err := newLogger("test", os.Stderr); err == nil {
		t.Fatal("expected error for unknown log level")
	}
	if *opened != nil {
		t.Error("log file opened despite the bad level")
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticking.log")
	setFlag(t, &flagLogLevel, "debug")
	setFlag(t, &flagLogFile, path)

	logger, closeLog, err := newLogger("test", os.Stderr)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestServeClosesLogFileOnError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // keep user config files out of the run

	setFlag(t, &flagConfig, "")
	setFlag(t, &flagLogLevel, "info")
	setFlag(t, &flagLogFile, filepath.Join(dir, "serve.log"))
	setFlag(t, &flagDBPath, filepath.Join(dir, "scores.db"))
	setFlag(t, &flagHostKey, filepath.Join(dir, "host_key"))
	setFlag(t, &flagSSHAddr, "127.0.0.1:-1")
	setFlag(t, &flagIdleTimeout, 1)
	setFlag(t, &flagFPS, 60)
	opened := captureLogFile(t)

	if err := serve(); err == nil {
		t.Fatal("expected listen error for an invalid port")
	}
	if *opened == nil {
		t.Fatal("log file was never opened")
	}
	if _, err := (*opened).WriteString("late"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("expected log file closed after serve returned, write error = %v", err)
	}
}
