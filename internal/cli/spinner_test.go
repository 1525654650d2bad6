package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func captureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := statusOut
	statusOut = &buf
	t.Cleanup(func() { statusOut = old })
	return &buf
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	buf := captureStatus(t)

	s := newSpinner(context.Background(), "Rendering split tree...")
	s.Start()
	time.Sleep(3 * s.anim.FPS)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering split tree...") {
		t.Errorf("spinner never drew its message: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should end by clearing the line: %q", out)
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	captureStatus(t)

	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "waiting")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after cancel")
	}
	s.Stop()
}

func TestSpinnerStopIdempotent(t *testing.T) {
	buf := captureStatus(t)

	s := newSpinner(context.Background(), "idle")
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("Stop before Start should not write, got %q", buf.String())
	}

	s = newSpinner(context.Background(), "busy")
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}
