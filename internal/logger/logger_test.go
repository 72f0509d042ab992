package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC) }
	return l
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Warn("warned")
	l.Error("failed")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message written at info level:\n%s", got)
	}
	want := "[03:04:05.006 INFO] shown 2\n[03:04:05.006 WARN] warned\n[03:04:05.006 ERROR] failed\n"
	if got != want {
		t.Errorf("output=%q; want %q", got, want)
	}
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, true)
	if !l.Verbose() {
		t.Fatalf("Verbose()=false; want true")
	}
	l.Debug("Searching %s", "src")
	if got, want := buf.String(), "[03:04:05.006 DEBUG] Searching src\n"; got != want {
		t.Errorf("output=%q; want %q", got, want)
	}
}

func TestSetLevel(t *testing.T) {
	for _, tc := range []struct {
		name string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelNone},
		{"bogus", LevelInfo},
	} {
		l := New(&bytes.Buffer{}, false, false)
		l.SetLevel(tc.name)
		if got := l.Level(); got != tc.want {
			t.Errorf("SetLevel(%q): Level()=%v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestLevelNoneSilencesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false).WithLevel(LevelNone)
	l.Error("nope")
	if buf.Len() != 0 {
		t.Errorf("output=%q; want empty", buf.String())
	}
}
