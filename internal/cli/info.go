package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/umbra/pkg/stl"
)

// newInfoCmd creates the info command, which inspects an existing STL file.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Inspect a binary STL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := stl.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	bmin, bmax := m.Bounds()
	var b strings.Builder
	fmt.Fprintln(&b, styleTitle.Render(path))
	row(&b, "triangles", fmt.Sprintf("%d", m.TriangleCount()))
	row(&b, "vertices", fmt.Sprintf("%d", m.VertexCount()))
	row(&b, "min", fmt.Sprintf("(%.2f, %.2f, %.2f)", bmin[0], bmin[1], bmin[2]))
	row(&b, "max", fmt.Sprintf("(%.2f, %.2f, %.2f)", bmax[0], bmax[1], bmax[2]))
	fmt.Print(b.String())
	return nil
}
