package text

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := slogger()
	if l == nil {
		t.Fatal("slogger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerCapturesFaceResolution(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { loggerPtr.Store(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := NewRendererWithSource(nil, loadTestFont(t))
	if _, err := r.Measure("log me", 18); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "face resolved") {
		t.Errorf("expected face resolution to be logged, got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { loggerPtr.Store(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	if slogger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
