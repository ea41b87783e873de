package IntTable

import (
	"fmt"
	"io"
	"strings"
)

type Pair struct {
	Key, Val int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Key, p.Val)
}

// Display lists the chain of every bucket, head to tail. For debugging only.
func (u *IntTable) Display() [][]Pair {
	d := make([][]Pair, len(u.t.buckets))
	for b := range d {
		u.t.walk(uint(b), func(e *entry) bool {
			d[b] = append(d[b], Pair{e.k, e.v})
			return true
		})
	}
	return d
}

// Fprint writes one line per bucket, like "Bucket 1: (10, 100) <-> NULL".
func (u *IntTable) Fprint(w io.Writer) error {
	var sb strings.Builder
	for b, chain := range u.Display() {
		sb.Reset()
		fmt.Fprintf(&sb, "Bucket %d: ", b)
		for _, p := range chain {
			sb.WriteString(p.String())
			sb.WriteString(" <-> ")
		}
		sb.WriteString("NULL\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("writing bucket %d: %w", b, err)
		}
	}
	return nil
}

func (u *IntTable) String() string {
	var sb strings.Builder
	_ = u.Fprint(&sb)
	return sb.String()
}
