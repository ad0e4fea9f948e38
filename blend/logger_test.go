package blend

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Fatal("default logger should be disabled")
	}
}

func TestSetLoggerCapturesScratchCopy(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	n := 9
	a := misaligned(t, n, 32)
	dst := make([]float64, n)
	if err := (Vector{LaneWidth: 4, Alignment: AlignCopy}).Run(dst, a, a); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "aligned scratch copy") {
		t.Fatalf("log output = %q, want scratch copy record", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
}
