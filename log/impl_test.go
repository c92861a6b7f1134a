package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLevels(t *testing.T) {
	l := New()
	if l.GetLevel() != LevelInfo {
		t.Fatalf("expected info level by default, got %d", l.GetLevel())
	}
	l.SetLevel("ERROR")
	if l.GetLevel() != LevelError {
		t.Fatalf("expected error level, got %d", l.GetLevel())
	}
	l.SetLevel("nonsense")
	if l.GetLevel() != LevelInfo {
		t.Fatalf("unknown level should fall back to info, got %d", l.GetLevel())
	}
}

func TestOutputIsDecorated(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	l.Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug entry written at info level: %q", buf.String())
	}

	l.Info("cost %.2f", 1.5)
	out := buf.String()
	if !strings.Contains(out, "cost 1.50") {
		t.Fatalf("missing message in %q", out)
	}
	if !strings.Contains(out, "position=") || !strings.Contains(out, "impl_test.go") {
		t.Fatalf("missing caller position in %q", out)
	}
	if l.GetOutput() != &buf {
		t.Fatalf("GetOutput did not return the configured writer")
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned different instances")
	}
}
