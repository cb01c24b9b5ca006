// Package resolve discovers the set of WIT files reachable from a root
// path and orders them so that a file is never processed before a
// package it references, per §4.3. It is grounded on the Kahn/DFS
// hybrid in the dependency resolver this emitter was distilled from,
// translated here into Go's idiomatic unvisited/visiting/visited
// coloring, using an explicit stack instead of that resolver's
// recursion so a deep or cyclic dependency graph cannot overflow the
// call stack.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/componentize-wit/witcodegen/wit"
)

var packageRE = regexp.MustCompile(`^\s*package\s+([a-zA-Z][a-zA-Z0-9-]*:[a-zA-Z][a-zA-Z0-9-]*(?:@[0-9]+\.[0-9]+\.[0-9]+[a-zA-Z0-9.-]*)?)`)

var refRE = regexp.MustCompile(`\b(?:use|import)\s+([a-zA-Z][a-zA-Z0-9-]*:[a-zA-Z][a-zA-Z0-9-]*(?:@[0-9]+\.[0-9]+\.[0-9]+[a-zA-Z0-9.-]*)?)`)

// Discover enumerates the dependency files reachable from rootPath
// (§4.3 steps 1-2): the containing directory's deps/ folder is scanned
// one level deep — direct .wit files and, for each direct
// subdirectory, every .wit file within it (deps/ trees are flat, never
// nested, per the WIT convention).
func Discover(rootPath string) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolve: stat %s: %w", rootPath, err)
	}
	base := rootPath
	if !info.IsDir() {
		base = filepath.Dir(rootPath)
	}
	depsDir := filepath.Join(base, "deps")
	entries, err := os.ReadDir(depsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve: read %s: %w", depsDir, err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(depsDir, entry.Name())
		switch {
		case entry.IsDir():
			subEntries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("resolve: read %s: %w", path, err)
			}
			for _, sub := range subEntries {
				if !sub.IsDir() && strings.HasSuffix(sub.Name(), ".wit") {
					files = append(files, filepath.Join(path, sub.Name()))
				}
			}
		case strings.HasSuffix(entry.Name(), ".wit"):
			files = append(files, path)
		}
	}
	return files, nil
}

// ExtractPackageIdent scans path for its "package ns:name[@version];"
// line without invoking the parser (§4.3's closing sentence: "the
// resolver is pure with respect to file content"), returning the
// package identifier text and whether one was found.
func ExtractPackageIdent(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if m := packageRE.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ExtractReferences scans path for every "use"/"import" target's
// leading package portion, deduplicated in first-seen order.
func ExtractReferences(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var refs []string
	seen := make(map[string]bool)
	for _, m := range refRE.FindAllStringSubmatch(string(data), -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			refs = append(refs, m[1])
		}
	}
	return refs
}

type color int

const (
	unvisited color = iota
	visiting
	visited
)

// frame is one entry of the explicit visit stack, tracking which of a
// node's dependency edges has already been pushed.
type frame struct {
	pkg      string
	depIndex int
}

// Resolve orders files so that no file is emitted before a package it
// references (§4.3 steps 5-7): it builds a package-name -> file graph,
// walks it with iterative unvisited/visiting/visited coloring
// (abandoning and reporting back edges on a cycle rather than failing),
// appends the sorted, package-declaring files in post-order, and then
// appends package-less files in lexicographic order.
func Resolve(files []string) ([]string, []wit.Diagnostic) {
	var diags []wit.Diagnostic

	packageToFile := make(map[string]string)
	fileToPackage := make(map[string]string)
	dependencies := make(map[string][]string)
	var packages []string

	for _, f := range files {
		pkg, ok := ExtractPackageIdent(f)
		if !ok {
			continue
		}
		if _, exists := packageToFile[pkg]; !exists {
			packages = append(packages, pkg)
		}
		packageToFile[pkg] = f
		fileToPackage[f] = pkg
	}
	for _, f := range files {
		pkg, ok := fileToPackage[f]
		if !ok {
			continue
		}
		dependencies[pkg] = ExtractReferences(f)
	}

	sort.Strings(packages)

	colors := make(map[string]color)
	var sorted []string

	for _, root := range packages {
		if colors[root] != unvisited {
			continue
		}
		stack := []frame{{pkg: root}}
		colors[root] = visiting
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := dependencies[top.pkg]
			advanced := false
			for top.depIndex < len(deps) {
				dep := deps[top.depIndex]
				top.depIndex++
				if _, known := packageToFile[dep]; !known {
					continue
				}
				switch colors[dep] {
				case unvisited:
					colors[dep] = visiting
					stack = append(stack, frame{pkg: dep})
					advanced = true
				case visiting:
					wit.Warnf(&diags, "dependency cycle detected: %q references %q, which is still being resolved", top.pkg, dep)
				case visited:
					// already emitted, nothing to do
				}
				if advanced {
					break
				}
			}
			if advanced {
				continue
			}
			colors[top.pkg] = visited
			sorted = append(sorted, packageToFile[top.pkg])
			stack = stack[:len(stack)-1]
		}
	}

	var unnamed []string
	for _, f := range files {
		if _, ok := fileToPackage[f]; !ok {
			unnamed = append(unnamed, f)
		}
	}
	sort.Strings(unnamed)
	sorted = append(sorted, unnamed...)

	return sorted, diags
}
