package gen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPackagePath(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/host\n\ngo 1.23\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "internal", "generated")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := PackagePath(sub)
	if err != nil {
		t.Fatal(err)
	}
	want := "example.com/host/internal/generated"
	if got != want {
		t.Errorf("PackagePath(%q): %q, expected %q", sub, got, want)
	}
}

func TestPackagePathNoModule(t *testing.T) {
	dir := t.TempDir()
	if _, err := PackagePath(dir); err == nil {
		t.Error("PackagePath: expected error for directory without go.mod, got nil")
	}
}
