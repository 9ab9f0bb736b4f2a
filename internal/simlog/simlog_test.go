package simlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerWritesToFile(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false))

	logger.Info("pipeline started", "cycles", 0)

	if got := buf.String(); !strings.Contains(got, "pipeline started") || !strings.Contains(got, "cycles=0") {
		t.Errorf("log output got: %q expected to contain message and attrs", got)
	}
}

func TestHandlerDiscardsWithNilWriter(t *testing.T) {
	logger := slog.New(NewHandler(nil, nil, false))
	logger.Info("no panic expected")
}
