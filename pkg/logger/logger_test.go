package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestFrom_FallsBackToDefault(t *testing.T) {
	if got := From(context.Background()); got != slog.Default() {
		t.Fatalf("expected slog.Default fallback")
	}
}

func TestWith_RoundTrip(t *testing.T) {
	l := New("local")
	ctx := With(context.Background(), l)
	if got := From(ctx); got != l {
		t.Fatalf("expected stored logger back")
	}
}
