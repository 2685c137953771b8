package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chazu/umbra/pkg/shadow"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleValue   = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

// summary renders the post-export report printed to stdout.
func summary(path string, triangles, boxes int, bounds shadow.Bounds, fileSize int) string {
	ext := bounds.Extent()
	var b strings.Builder
	fmt.Fprintln(&b, styleTitle.Render("umbra export"))
	row(&b, "output", path)
	row(&b, "boxes", fmt.Sprintf("%d", boxes))
	row(&b, "triangles", fmt.Sprintf("%d", triangles))
	row(&b, "footprint", fmt.Sprintf("%.2f x %.2f x %.2f mm", ext.X, ext.Y, ext.Z))
	row(&b, "file size", fmt.Sprintf("%d bytes", fileSize))
	fmt.Fprintln(&b, styleSuccess.Render("done"))
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-10s", label)), styleValue.Render(value))
}
