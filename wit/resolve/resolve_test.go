package resolve

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExtractPackageIdent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.wit")
	writeFile(t, path, "package example:app@1.0.0;\n\nworld w {}\n")
	pkg, ok := ExtractPackageIdent(path)
	if !ok || pkg != "example:app@1.0.0" {
		t.Fatalf("ExtractPackageIdent = %q, %v", pkg, ok)
	}
}

func TestExtractPackageIdentMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.wit")
	writeFile(t, path, "interface i {}\n")
	if _, ok := ExtractPackageIdent(path); ok {
		t.Fatal("expected no package identifier")
	}
}

func TestExtractReferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.wit")
	writeFile(t, path, `package example:app;
interface i {
  use dep:lib/thing.{thing};
}
world w {
  import dep:lib/thing@0.1.0;
}
`)
	refs := ExtractReferences(path)
	if len(refs) == 0 {
		t.Fatal("expected at least one reference")
	}
	found := false
	for _, r := range refs {
		if r == "dep:lib" {
			found = true
		}
	}
	if !found {
		t.Errorf("refs = %v, want one of them to be %q", refs, "dep:lib")
	}
}

func TestDiscoverOneLevelDeep(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.wit"), "package example:app;\nworld w {}\n")
	writeFile(t, filepath.Join(dir, "deps", "direct.wit"), "package dep:direct;\n")
	writeFile(t, filepath.Join(dir, "deps", "nested", "lib.wit"), "package dep:lib;\n")
	writeFile(t, filepath.Join(dir, "deps", "nested", "inner", "unreached.wit"), "package dep:unreached;\n")

	deps, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(deps) != 2 {
		t.Fatalf("got %d deps, want 2 (flat, one level): %v", len(deps), deps)
	}
}

func TestDiscoverNoDepsDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.wit"), "package example:app;\n")
	deps, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(deps) != 0 {
		t.Fatalf("got %d deps, want 0", len(deps))
	}
}

func TestResolveS5DependencyOrdering(t *testing.T) {
	dir := t.TempDir()
	rootPath := filepath.Join(dir, "root.wit")
	libPath := filepath.Join(dir, "deps", "lib.wit")
	writeFile(t, rootPath, "package example:app;\nuse dep:lib.{thing};\nworld w {}\n")
	writeFile(t, libPath, "package dep:lib;\n")

	sorted, diags := Resolve([]string{rootPath, libPath})
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %+v", diags)
	}
	if len(sorted) != 2 || sorted[0] != libPath || sorted[1] != rootPath {
		t.Fatalf("sorted = %v, want [%s, %s]", sorted, libPath, rootPath)
	}
}

func TestResolveCycleReportedAndContinues(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.wit")
	bPath := filepath.Join(dir, "b.wit")
	writeFile(t, aPath, "package cyc:a;\nuse cyc:b.{x};\n")
	writeFile(t, bPath, "package cyc:b;\nuse cyc:a.{x};\n")

	sorted, diags := Resolve([]string{aPath, bPath})
	if len(sorted) != 2 {
		t.Fatalf("got %d sorted files, want 2: %v", len(sorted), sorted)
	}
	if len(diags) == 0 {
		t.Error("expected a cycle diagnostic")
	}
}

func TestResolvePackagelessFilesAppendedLexicographically(t *testing.T) {
	dir := t.TempDir()
	zPath := filepath.Join(dir, "z.wit")
	aPath := filepath.Join(dir, "a.wit")
	writeFile(t, zPath, "interface z {}\n")
	writeFile(t, aPath, "interface a {}\n")

	sorted, _ := Resolve([]string{zPath, aPath})
	if len(sorted) != 2 || sorted[0] != aPath || sorted[1] != zPath {
		t.Fatalf("sorted = %v, want lexicographic [%s, %s]", sorted, aPath, zPath)
	}
}
