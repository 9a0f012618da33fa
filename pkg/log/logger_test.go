package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden message")
	logger.Warningf("visible %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Expected info message to be filtered at warning level, got %q", out)
	}
	if !strings.Contains(out, "visible 42") {
		t.Errorf("Expected warning message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("Expected debug message at debug level, got %q", buf.String())
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Error)
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	New("test").Notice("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected sink change to keep error level, got %q", buf.String())
	}
}

func TestSetLevelIgnoresUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	SetLevel(Warning)
	SetLevel(Level(42))

	New("test").Notice("still filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected unknown level to leave warning level in place, got %q", buf.String())
	}
}
