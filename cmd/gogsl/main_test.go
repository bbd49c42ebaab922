package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionAlwaysSucceeds(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "binding:") || !strings.Contains(out, "gsl:") {
		t.Errorf("version output missing fields:\n%s", out)
	}
}

func TestProbeReflectsBuildFlavor(t *testing.T) {
	out, err := run(t, "probe")
	if gsl.Built() {
		if err != nil {
			t.Fatalf("probe on native build: %v", err)
		}
		if !strings.Contains(out, "linked") {
			t.Errorf("probe output = %q", out)
		}
	} else if !errors.Is(err, gsl.ErrNotBuilt) {
		t.Fatalf("probe without native build err = %v, want ErrNotBuilt", err)
	}
}

func TestGeneratorsListsDefault(t *testing.T) {
	out, err := run(t, "generators")
	if !gsl.Built() {
		if !errors.Is(err, gsl.ErrNotBuilt) {
			t.Fatalf("generators err = %v, want ErrNotBuilt", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("generators: %v", err)
	}
	if !strings.Contains(out, "mt19937") {
		t.Errorf("generators output missing mt19937:\n%s", out)
	}
}

func TestEnvResolvesVariables(t *testing.T) {
	if !gsl.Built() {
		t.Skip("native GSL bindings not built")
	}
	t.Setenv("GSL_RNG_TYPE", "taus2")
	t.Setenv("GSL_RNG_SEED", "7")

	out, err := run(t, "env")
	if err != nil {
		t.Fatalf("env: %v", err)
	}
	if !strings.Contains(out, "taus2") || !strings.Contains(out, "7") {
		t.Errorf("env output = %q", out)
	}
}
