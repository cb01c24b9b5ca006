// Package generate implements the "generate" subcommand: the core
// codegen <wit-file> [<output-prefix>] operation of §6 EXTERNAL
// INTERFACES, wired to a *cli.Command the way the teacher's own
// generate subcommand is (cli.StringConfig{TrimSpace: true}, OnlyOnce
// flags, stderr progress lines).
package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/componentize-wit/witcodegen/codegen"
	"github.com/componentize-wit/witcodegen/internal/go/gen"
	"github.com/componentize-wit/witcodegen/internal/witcli"
	"github.com/componentize-wit/witcodegen/wit"
	"github.com/componentize-wit/witcodegen/wit/logging"
)

// Command is the CLI command for generate.
var Command = &cli.Command{
	Name:  "generate",
	Usage: "generate C++ host bindings from a WIT file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      "out",
			Aliases:   []string{"o"},
			Value:     ".",
			TakesFile: true,
			OnlyOnce:  true,
			Config:    cli.StringConfig{TrimSpace: true},
			Usage:     "output directory",
		},
		&cli.StringFlag{
			Name:     "prefix",
			Aliases:  []string{"p"},
			Value:    "",
			OnlyOnce: true,
			Config:   cli.StringConfig{TrimSpace: true},
			Usage:    "output file prefix, defaults to the WIT package name",
		},
		&cli.BoolFlag{
			Name:  "stubs",
			Usage: "additionally emit <prefix>_stubs.cpp with TODO-bodied host function implementations",
		},
	},
	Action: action,
}

func action(_ context.Context, cmd *cli.Command) error {
	log := witcli.Logger(cmd.Bool("verbose"), cmd.Bool("debug"))

	// An optional second positional argument names the output prefix;
	// the --prefix flag takes precedence over it.
	args := cmd.Args().Slice()
	prefix := cmd.String("prefix")
	if len(args) == 2 {
		if prefix == "" {
			prefix = args[1]
		}
		args = args[:1]
	}

	path, err := witcli.LoadPath(args...)
	if err != nil {
		return err
	}

	ir, diags, err := witcli.LoadIR(path)
	if err != nil {
		return err
	}
	logDiagnostics(log, diags)

	out := cmd.String("out")
	info, err := witcli.FindOrCreateDir(out)
	if err != nil {
		return err
	}
	outPerm := info.Mode().Perm()

	// PackagePath only seeds a log line here: the emitted C++ doesn't
	// live inside a Go package, but a host project embedding the glue
	// may, and knowing its module path helps a user spot an
	// accidental output-directory collision with their own sources.
	if modPath, err := gen.PackagePath(out); err == nil {
		log.Infof("output directory is under Go module: %s", modPath)
	}

	if prefix == "" {
		prefix = prefixFromPackage(ir.Package.UnversionedString())
	}

	header, glue, glueHeader, emitDiags := codegen.Emit(ir, codegen.Options{
		OutputStem: prefix,
		EmitStubs:  cmd.Bool("stubs"),
	})
	logDiagnostics(log, emitDiags)

	files := map[string][]byte{
		prefix + ".hpp":      header,
		prefix + "_wamr.cpp": glue,
		prefix + "_wamr.hpp": glueHeader,
	}
	if cmd.Bool("stubs") {
		files[prefix+"_stubs.cpp"] = codegen.Stubs(ir, prefix)
	}

	for _, name := range []string{prefix + ".hpp", prefix + "_wamr.hpp", prefix + "_wamr.cpp", prefix + "_stubs.cpp"} {
		content, ok := files[name]
		if !ok {
			continue
		}
		dest := filepath.Join(out, name)
		if err := os.WriteFile(dest, content, outPerm); err != nil {
			return err
		}
		log.Infof("generated file: %s", dest)
	}
	return nil
}

func logDiagnostics(log logging.Logger, diags []wit.Diagnostic) {
	for _, d := range diags {
		if d.Severity == wit.SeverityError {
			log.Errorf("%s", d.Message)
		} else {
			log.Warnf("%s", d.Message)
		}
	}
}

// prefixFromPackage derives the default output prefix from a package
// name's component after the ":" (§6: "the name component after :,
// stripped of @version, default generated").
func prefixFromPackage(pkg string) string {
	if pkg == "" {
		return "generated"
	}
	_, name, ok := strings.Cut(pkg, ":")
	if !ok {
		name = pkg
	}
	name, _, _ = strings.Cut(name, "@")
	if name == "" {
		return "generated"
	}
	return name
}
