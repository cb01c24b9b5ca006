package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateWritesExpectedFiles(t *testing.T) {
	dir := t.TempDir()
	witPath := filepath.Join(dir, "root.wit")
	src := `package example:greeter;
interface greet {
  hello: func(name: string) -> string;
}
world w {
  export greet;
}
`
	if err := os.WriteFile(witPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	cmd := Command
	args := []string{"witcodegen", "generate", "--out", outDir, witPath}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for _, name := range []string{"greeter.hpp", "greeter_wamr.cpp", "greeter_wamr.hpp"} {
		path := filepath.Join(outDir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("expected %s to be non-empty", name)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "greeter_stubs.cpp")); !os.IsNotExist(err) {
		t.Error("expected no stubs file without --stubs")
	}
}

func TestGenerateWithStubsFlag(t *testing.T) {
	dir := t.TempDir()
	witPath := filepath.Join(dir, "root.wit")
	src := `package example:greeter;
interface greet {
  hello: func(name: string) -> string;
}
world w {
  import greet;
}
`
	if err := os.WriteFile(witPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	cmd := Command
	args := []string{"witcodegen", "generate", "--out", outDir, "--stubs", witPath}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "greeter_stubs.cpp")); err != nil {
		t.Errorf("expected greeter_stubs.cpp to exist: %v", err)
	}
}

func TestDescribePrintsInterfaces(t *testing.T) {
	dir := t.TempDir()
	witPath := filepath.Join(dir, "root.wit")
	src := `package example:greeter;
interface greet {
  hello: func(name: string) -> string;
}
world w {
  export greet;
}
`
	if err := os.WriteFile(witPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := Command
	args := []string{"witcodegen", "describe", witPath}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("describe failed: %v", err)
	}
}
