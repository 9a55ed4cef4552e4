// Package chunker splits extracted paper text into token-budgeted,
// priority-tagged chunks without ever breaking a paragraph or table.
package chunker

import "fmt"

// Priority ranks how much deep-dive attention a segment or chunk deserves.
// P0 is the highest tier (read first), P3 the lowest.
type Priority int

const (
	P0 Priority = iota
	P1
	P2
	P3
)

// String renders the priority as its artifact label (P0..P3).
func (p Priority) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// Segment is an indivisible span of the source text: one paragraph or one
// table block. Raw preserves the original bytes, including the blank lines
// that follow the content, so concatenating every segment's Raw reproduces
// the input exactly.
type Segment struct {
	Start    int
	Raw      string
	Text     string
	Table    bool
	Section  string
	Priority Priority
}

// Chunk is an ordered group of segments whose combined token estimate fits
// the configured budget, except when a single oversized segment forces an
// over-budget chunk.
type Chunk struct {
	Index      int
	Priority   Priority
	Text       string
	Continuity string
	Sections   []string
	Tokens     int
	OverBudget bool
}
