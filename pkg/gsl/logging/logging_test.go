package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
)

func TestLoggerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Info(context.Background(), "probing library", "built", false)

	out := buf.String()
	if !strings.Contains(out, "probing library") || !strings.Contains(out, "built=false") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, nil))).With("generator", "mt19937")

	logger.Debug(context.Background(), "seeded")
	if buf.Len() != 0 {
		t.Fatalf("debug should be below default level, got %q", buf.String())
	}

	logger.Warn(context.Background(), "seeded")
	if out := buf.String(); !strings.Contains(out, "generator=mt19937") {
		t.Fatalf("missing attached attribute: %q", out)
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(&gsl.Error{Op: "sf_gamma_e", Code: gsl.EDom})
	if attr.Key != "gsl" {
		t.Fatalf("unexpected group key %q", attr.Key)
	}

	group := attr.Value.Group()
	if len(group) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(group))
	}
	if got := group[0].Value.Int64(); got != int64(gsl.EDom) {
		t.Errorf("code attribute = %d, want %d", got, int(gsl.EDom))
	}
	if got := group[1].Value.String(); got != "input domain error" {
		t.Errorf("status attribute = %q", got)
	}

	if c := Status(nil).Value.Group()[0].Value.Int64(); c != int64(gsl.Success) {
		t.Errorf("Status(nil) code = %d, want Success", c)
	}
}
