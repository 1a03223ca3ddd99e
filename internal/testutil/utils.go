package testutil

import (
	"log"
	"strings"
	"testing"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// TestLogger returns a logger whose output is attached to t.
func TestLogger(t *testing.T) *log.Logger {
	return log.New(testWriter{t: t}, "[test] ", 0)
}
