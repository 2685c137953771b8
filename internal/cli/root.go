package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the umbra CLI. The root command wires the --verbose flag
// into a context-scoped logger available to all subcommands.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "umbra",
		Short:        "Umbra turns grayscale images into shadow-casting printable solids",
		Long:         `Umbra converts one or two grayscale images into a 3D-printable solid whose per-pixel wall heights cast the source images as shadows when lit from two perpendicular directions. Output is binary STL.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("umbra %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(ctx)
}
