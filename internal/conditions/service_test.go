package conditions

import (
	"io"
	"log/slog"
	"testing"
)

func TestService_Classify(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := svc.Classify(codePtr(61), Options{})
	want := Classify(codePtr(61), Options{})
	if got != want {
		t.Errorf("service result %+v differs from pure result %+v", got, want)
	}

	// nil code goes through the fallback path without logging attributes blowing up
	if got := svc.Classify(nil, Options{}); got.Description != "Unknown" {
		t.Errorf("nil code description = %q, want %q", got.Description, "Unknown")
	}
}
