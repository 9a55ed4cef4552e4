package codescan

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	classRe  = regexp.MustCompile(`^class\s+\w+`)
	defRe    = regexp.MustCompile(`^(?:async\s+)?def\s+\w+`)
	methodRe = regexp.MustCompile(`^(?: {4}|\t)(?:async\s+)?def\s+\w+`)
)

// Skeleton renders a signature-level overview of the scanned tree: the file
// list with priority markers, then top-level class/def lines per file so a
// reader can size up the architecture before requesting full chunks.
func Skeleton(result *ScanResult) string {
	var b strings.Builder

	b.WriteString("# Code Structure Skeleton\n\n")
	b.WriteString("## File Tree\n```\n")
	for _, f := range result.Files {
		fmt.Fprintf(&b, "[%s] %s (%d lines)\n", f.Priority, f.RelPath, f.Lines)
	}
	b.WriteString("```\n\n")

	if len(result.Skipped) > 0 {
		b.WriteString("## Skipped\n```\n")
		for _, s := range result.Skipped {
			fmt.Fprintf(&b, "%s\n", s)
		}
		b.WriteString("```\n\n")
	}

	b.WriteString("## Signatures by Priority\n")
	lastPriority := -1
	for _, f := range result.Files {
		if int(f.Priority) != lastPriority {
			lastPriority = int(f.Priority)
			fmt.Fprintf(&b, "\n### Priority %s\n", f.Priority)
		}
		sigs := signatures(f.Content)
		if len(sigs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n#### `%s`\n```python\n", f.RelPath)
		for _, s := range sigs {
			b.WriteString(s)
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}

	return b.String()
}

// signatures pulls class, function, and method declaration lines from a
// Python source body. It is a line scan, not a parser: enough structure to
// orient a reader, with no claim of handling every decorator or multi-line
// signature.
func signatures(content string) []string {
	var sigs []string
	for _, line := range strings.Split(content, "\n") {
		trimmedRight := strings.TrimRight(line, " \t")
		switch {
		case classRe.MatchString(trimmedRight):
			sigs = append(sigs, trimmedRight)
		case defRe.MatchString(trimmedRight):
			sigs = append(sigs, trimmedRight)
		case methodRe.MatchString(trimmedRight):
			sigs = append(sigs, trimmedRight)
		}
	}
	return sigs
}
