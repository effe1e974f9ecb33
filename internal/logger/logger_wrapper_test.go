package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kodistudios/playnote/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (contracts.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLoggerFrom(zap.New(core)), logs
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level contracts.LogLevel
		want  []string
	}{
		{contracts.DebugLevel, []string{"debug", "info", "warn", "error"}},
		{contracts.InfoLevel, []string{"info", "warn", "error"}},
		{contracts.WarnLevel, []string{"warn", "error"}},
		{contracts.ErrorLevel, []string{"error"}},
	}

	for _, tt := range tests {
		log, logs := newObserved(t)
		log.SetLevel(tt.level)

		log.Debug("debug")
		log.Info("info")
		log.Warn("warn")
		log.Error("error")

		var got []string
		for _, entry := range logs.All() {
			got = append(got, entry.Message)
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("level %d: got %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestFieldsAreStructured(t *testing.T) {
	log, logs := newObserved(t)
	cause := errors.New("boom")

	log.Info("MIDI message sent",
		log.Field().Int("channel", 3),
		log.Field().String("message", "93 3C 7F"),
		log.Field().Uint8("velocity", 127),
		log.Field().Duration("hold", 2*time.Second),
		log.Field().Error("error", cause),
	)

	entries := logs.FilterMessage("MIDI message sent").All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["channel"] != int64(3) {
		t.Errorf("channel = %#v", ctx["channel"])
	}
	if ctx["message"] != "93 3C 7F" {
		t.Errorf("message = %#v", ctx["message"])
	}
	if ctx["velocity"] != uint8(127) {
		t.Errorf("velocity = %#v", ctx["velocity"])
	}
	if ctx["hold"] != 2*time.Second {
		t.Errorf("hold = %#v", ctx["hold"])
	}
	if ctx["error"] != "boom" {
		t.Errorf("error = %#v", ctx["error"])
	}
}

func TestSetDestinationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playnote.log")

	log := NewZapLogger()
	log.SetDestination(contracts.FileLog, path)
	log.Info("written to file", log.Field().Int("pitch", 60))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"written to file"`) || !strings.Contains(string(data), `"pitch":60`) {
		t.Errorf("unexpected log file contents: %s", data)
	}
}

func TestSetDestinationClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()

	log := NewZapLogger()
	z := log.(*ZapLogger)

	log.SetDestination(contracts.FileLog, filepath.Join(dir, "first.log"))
	first := z.file
	if first == nil {
		t.Fatal("file destination not tracked")
	}

	log.SetDestination(contracts.FileLog, filepath.Join(dir, "second.log"))
	if _, err := first.Write([]byte("late")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write to replaced log file = %v, want %v", err, os.ErrClosed)
	}
	second := z.file
	if second == nil || second == first {
		t.Fatal("second file destination not tracked")
	}

	log.SetDestination(contracts.ConsoleLog)
	if z.file != nil {
		t.Error("console destination kept a log file")
	}
	if _, err := second.Write([]byte("late")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write to replaced log file = %v, want %v", err, os.ErrClosed)
	}
}

func TestParseLogLevel(t *testing.T) {
	for name, want := range map[string]contracts.LogLevel{
		"debug": contracts.DebugLevel,
		"":      contracts.InfoLevel,
		"warn":  contracts.WarnLevel,
		"error": contracts.ErrorLevel,
	} {
		got, ok := contracts.ParseLogLevel(name)
		if !ok || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := contracts.ParseLogLevel("loud"); ok {
		t.Error("ParseLogLevel accepted an unknown level")
	}
}
