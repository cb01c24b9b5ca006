package witcli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/componentize-wit/witcodegen/internal/visitor"
	"github.com/componentize-wit/witcodegen/wit"
	"github.com/componentize-wit/witcodegen/wit/resolve"
)

// FindRootFile picks the WIT file that anchors dependency resolution
// when the CLI is given a directory instead of a file: the first .wit
// file (sorted by name, for determinism) that declares a package,
// falling back to the first .wit file found if none does (§4
// "Supplemented features", grounded on the original generator's
// find_root_wit_file).
func FindRootFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".wit") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "", fmt.Errorf("no .wit files found in %s", dir)
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, ok := resolve.ExtractPackageIdent(path); ok {
			return path, nil
		}
	}
	return filepath.Join(dir, names[0]), nil
}

// LoadPath resolves the single input path a subcommand was invoked
// with, defaulting to "-" for stdin when none was given.
func LoadPath(paths ...string) (string, error) {
	switch len(paths) {
	case 0:
		return "-", nil
	case 1:
		return paths[0], nil
	default:
		return "", fmt.Errorf("found %d path arguments, expecting 0 or 1", len(paths))
	}
}

// LoadIR resolves path to a root WIT file (descending into a directory
// via FindRootFile if needed), discovers and orders its dependency
// tree with wit/resolve for diagnostic purposes, then parses and
// builds the root file's IR (§3.1/§3.2). Diagnostics collected during
// dependency resolution and IR construction are merged and returned
// alongside the IR; neither stage is fatal on its own (§4.6).
func LoadIR(path string) (*wit.IR, []wit.Diagnostic, error) {
	var diags []wit.Diagnostic

	root := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		root, err = FindRootFile(path)
		if err != nil {
			return nil, nil, err
		}
	}

	deps, err := resolve.Discover(root)
	if err != nil {
		return nil, nil, fmt.Errorf("discovering dependencies for %s: %w", root, err)
	}

	// A root file that also happens to live under its own deps/ tree
	// (e.g. re-exported as its own dependency) must only be resolved
	// once; dedup the merged list with a Visitor rather than assuming
	// Discover and the caller never overlap.
	var files []string
	v := visitor.New(func(f string) bool {
		files = append(files, f)
		return true
	})
	for _, f := range append([]string{root}, deps...) {
		v.Yield(f)
	}

	_, resolveDiags := resolve.Resolve(files)
	diags = append(diags, resolveDiags...)

	src, err := os.ReadFile(root)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", root, err)
	}
	file, err := wit.ParseFile(string(src))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", root, err)
	}

	b := &wit.Builder{}
	ir := b.Build(file)
	diags = append(diags, b.Diagnostics...)
	return ir, diags, nil
}
