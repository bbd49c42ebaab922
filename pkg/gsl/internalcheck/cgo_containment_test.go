package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const backendPath = "github.com/ctfree/gogsl/pkg/gsl/internal/backend"

// Only the backend may talk to the native library. Everything above it
// works through the backend's Go API, so freeing a handle twice or
// passing a stale pointer can be caught in exactly one place.
func TestCgoConfinedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/ctfree/gogsl/pkg/gsl/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPath {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" || path == "unsafe" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings,
						fmt.Sprintf("%s: package %s imports %q outside the backend", pos, pkg.PkgPath, path))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo containment violation:\n%s", strings.Join(findings, "\n"))
	}
}
