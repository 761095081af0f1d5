package logging

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	now := time.Now()
	if got := formatTimestamp(now); len(got) != len("15:04:05.000") || strings.Contains(got, "-") {
		t.Fatalf("expected clock-only timestamp for today, got %q", got)
	}
	old := time.Date(2020, time.March, 4, 5, 6, 7, 8_000_000, time.Local)
	if got := formatTimestamp(old); got != "2020-03-04 05:06:07.008" {
		t.Fatalf("unexpected timestamp for an older record: %q", got)
	}
	if got := formatTimestamp(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}

func TestFormatValueQuoting(t *testing.T) {
	tests := map[string]slog.Value{
		`""`:          slog.StringValue(""),
		`"two words"`: slog.StringValue("two words"),
		"plain":       slog.StringValue("plain"),
		"0.25":        slog.Float64Value(0.25),
		"1.5ms":       slog.DurationValue(1500 * time.Microsecond),
	}
	for want, v := range tests {
		if got := formatValue(v); got != want {
			t.Errorf("formatValue(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestUseColorHonoursNoColor(t *testing.T) {
	if useColor(os.Stderr, true) {
		t.Fatal("expected colour to be off when disabled")
	}
	if useColor(&bytes.Buffer{}, false) {
		t.Fatal("expected colour to be off for a non-terminal writer")
	}

	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	slog.New(newPrettyHandler(&buf, levelVar, false, true)).Warn("coloured")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected escape codes when colour is on, got %q", buf.String())
	}
}
