// Package fetch implements the "fetch" subcommand: pulling a WIT
// package from an OCI registry before the same local pipeline runs,
// grounded on the teacher's OCI-backed loadWITModule path in its own
// generate subcommand.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/componentize-wit/witcodegen/internal/oci"
)

// Command is the CLI command for fetch.
var Command = &cli.Command{
	Name:      "fetch",
	Usage:     "download a WIT package from an OCI registry",
	ArgsUsage: "<oci-ref> <dest-dir>",
	Action:    action,
}

func action(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("fetch requires exactly 2 arguments: <oci-ref> <dest-dir>")
	}
	ociRef, destDir := args[0], args[1]

	if !oci.IsOCIPath(ociRef) {
		return fmt.Errorf("%s does not look like an OCI reference", ociRef)
	}

	buf, err := oci.PullWIT(ctx, ociRef)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}
	dest := filepath.Join(destDir, "root.wit")
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Fetched %s -> %s\n", ociRef, dest)
	return nil
}
