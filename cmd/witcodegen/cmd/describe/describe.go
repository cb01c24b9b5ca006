// Package describe implements the "describe" subcommand: a
// pretty-printer for a resolved WIT IR, grounded on the teacher's own
// describe subcommand but walking this tool's flat Interface/FuncSig
// IR shape instead of wit.Resolve's World/TypeDef graph.
package describe

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/componentize-wit/witcodegen/internal/witcli"
	"github.com/componentize-wit/witcodegen/wit"
)

// Command is the CLI command for describe.
var Command = &cli.Command{
	Name:   "describe",
	Usage:  "print the resolved interfaces and functions of a WIT file",
	Action: action,
}

func action(_ context.Context, cmd *cli.Command) error {
	log := witcli.Logger(cmd.Bool("verbose"), cmd.Bool("debug"))

	path, err := witcli.LoadPath(cmd.Args().Slice()...)
	if err != nil {
		return err
	}
	ir, diags, err := witcli.LoadIR(path)
	if err != nil {
		return err
	}
	for _, d := range diags {
		if d.Severity == wit.SeverityError {
			log.Errorf("%s", d.Message)
		} else {
			log.Warnf("%s", d.Message)
		}
	}

	fmt.Printf("package %s\n\n", ir.Package.UnversionedString())
	for _, iface := range ir.Interfaces {
		printInterface(iface)
	}
	return nil
}

func printInterface(iface *wit.Interface) {
	label := iface.Name
	if iface.Synthetic {
		label = "$root"
	}
	fmt.Printf("%s %s {\n", iface.Direction, label)
	for name, rec := range iface.Records.All() {
		fmt.Printf("    record %s { %s }\n", name, fieldList(rec.Fields))
	}
	for name, variant := range iface.Variants.All() {
		fmt.Printf("    variant %s { %d case(s) }\n", name, len(variant.Cases))
	}
	for name, enum := range iface.Enums.All() {
		fmt.Printf("    enum %s { %s }\n", name, strings.Join(enum.Cases, ", "))
	}
	for _, fn := range iface.Functions {
		fmt.Printf("    %s: func(%s)", fn.Name, fieldList(fn.Params))
		if len(fn.Results) > 0 {
			fmt.Printf(" -> %s", fieldList(fn.Results))
		}
		fmt.Println()
	}
	fmt.Println("}")
}

func fieldList(fields []wit.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			parts[i] = string(f.Type)
			continue
		}
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
	}
	return strings.Join(parts, ", ")
}
