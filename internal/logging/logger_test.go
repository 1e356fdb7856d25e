package logging

import (
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns what it wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func TestLoggerLevels(t *testing.T) {
	logger := New(false, true)

	out := captureStderr(t, func() { logger.Info("hello %s", "world") })
	if !strings.Contains(out, "✓ hello world") {
		t.Errorf("Info output = %q, want it to contain ✓ hello world", out)
	}

	out = captureStderr(t, func() { logger.Warn("careful") })
	if !strings.Contains(out, "⚠ careful") {
		t.Errorf("Warn output = %q, want it to contain ⚠ careful", out)
	}

	out = captureStderr(t, func() { logger.Error("broken") })
	if !strings.Contains(out, "✗ broken") {
		t.Errorf("Error output = %q, want it to contain ✗ broken", out)
	}
}

func TestDebugGate(t *testing.T) {
	quiet := New(false, true)
	out := captureStderr(t, func() { quiet.Debug("hidden") })
	if out != "" {
		t.Errorf("Debug output with debug disabled = %q, want empty", out)
	}

	verbose := New(true, true)
	out = captureStderr(t, func() { verbose.Debug("visible") })
	if !strings.Contains(out, "[DEBUG] visible") {
		t.Errorf("Debug output = %q, want it to contain [DEBUG] visible", out)
	}
}
