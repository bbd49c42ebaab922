package internalcheck

import (
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Every backend function that allocates a native object must have a
// matching release function, so the owning wrappers can uphold the
// free-exactly-once contract.
func TestEveryBackendAllocHasAFree(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, backendPath)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	funcs := map[string]bool{}
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if ok && fd.Recv == nil {
					funcs[fd.Name.Name] = true
				}
			}
		}
	}
	if len(funcs) == 0 {
		t.Fatal("no backend functions found")
	}

	var missing []string
	for name := range funcs {
		idx := strings.Index(name, "Alloc")
		if idx <= 0 {
			continue
		}
		owner := name[:idx]
		if !funcs[owner+"Free"] {
			missing = append(missing, name+" has no "+owner+"Free")
		}
	}

	if len(missing) > 0 {
		t.Fatalf("allocation without release:\n%s", strings.Join(missing, "\n"))
	}
}
