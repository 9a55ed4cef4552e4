// Package report renders the human-readable run summary that follows a
// chunking pass.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/mwiater/paperchunk/internal/manifest"
	"github.com/mwiater/paperchunk/internal/util"
)

const provenanceWidth = 56

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	totalsStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	prioritySprints = map[string]func(a ...interface{}) string{
		"P0": color.New(color.FgHiGreen, color.Bold).SprintFunc(),
		"P1": color.New(color.FgCyan).SprintFunc(),
		"P2": color.New(color.FgYellow).SprintFunc(),
		"P3": color.New(color.FgHiBlack).SprintFunc(),
	}
	warnSprint = color.New(color.FgHiRed).SprintFunc()
)

// Summary prints a per-chunk listing followed by a totals box.
func Summary(w io.Writer, m *manifest.Manifest, outDir string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Chunked %s into %d chunks", m.Source, m.TotalChunks)))

	for _, c := range m.Chunks {
		sprint := prioritySprints[c.Priority]
		if sprint == nil {
			sprint = fmt.Sprint
		}
		note := ""
		if c.OverBudget {
			note = " " + warnSprint("over budget")
		}
		fmt.Fprintf(w, "  %s  %s  %5d tokens  %s%s\n",
			c.File, sprint(c.Priority), c.Tokens, util.TruncateRunes(provenance(c.Provenance), provenanceWidth), note)
	}

	var totals []string
	totals = append(totals, fmt.Sprintf("chunks: %d", m.TotalChunks))
	if len(m.SkippedFiles) > 0 {
		totals = append(totals, fmt.Sprintf("skipped: %d", len(m.SkippedFiles)))
	}
	if len(m.Warnings) > 0 {
		totals = append(totals, warnSprint(fmt.Sprintf("warnings: %d", len(m.Warnings))))
	}
	totals = append(totals, "output: "+outDir)
	fmt.Fprintln(w, totalsStyle.Render(strings.Join(totals, "  |  ")))
}

// provenance compacts a provenance list to its first two labels.
func provenance(labels []string) string {
	if len(labels) <= 2 {
		return strings.Join(labels, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(labels[:2], ", "), len(labels)-2)
}
