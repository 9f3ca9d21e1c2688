package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// ErrUnknownTieBreak indicates a tie-break name ParseTieBreak does not know.
var ErrUnknownTieBreak = errors.New("frontier: unknown tie-break policy")

// TieBreak selects which of two equal-priority entries pops first.
type TieBreak int

const (
	// TieLIFO pops the most recently pushed entry first.
	TieLIFO TieBreak = iota
	// TieFIFO pops entries in insertion order.
	TieFIFO
)

func (t TieBreak) String() string {
	switch t {
	case TieLIFO:
		return "lifo"
	case TieFIFO:
		return "fifo"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// ParseTieBreak maps "lifo" or "fifo" (case-insensitive) to a TieBreak.
// The empty string selects the default, TieLIFO.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lifo", "":
		return TieLIFO, nil
	case "fifo":
		return TieFIFO, nil
	}
	return TieLIFO, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
}

// Entry is one pending item of the frontier.
type Entry struct {
	Coord    gridgraph.Coordinate
	Priority float64
	Seq      uint64 // push order, starting at 1
}
