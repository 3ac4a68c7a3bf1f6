// Package dratfmt renders a captured DRAT trace to the textual proof format
// DRAT-trim and other checkers consume: one line per event, literals as
// signed DIMACS integers terminated by 0, deletions prefixed with "d ".
package dratfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hartwell/cdclsat/internal/sat"
)

// Write renders events to w in order, one line per event.
func Write(w io.Writer, events []sat.DratEvent) error {
	bw := bufio.NewWriter(w)
	for _, ev := range events {
		if ev.Kind == sat.DratDelete {
			if _, err := bw.WriteString("d "); err != nil {
				return err
			}
		}
		for _, l := range ev.Literals {
			if _, err := fmt.Fprintf(bw, "%d ", literalToInt(l)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// literalToInt converts an internal Literal back to the signed DIMACS
// integer form DRAT output uses (variables numbered from 1).
func literalToInt(l sat.Literal) int {
	v := l.VarID() + 1
	if l.IsPositive() {
		return v
	}
	return -v
}
