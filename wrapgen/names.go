package wrapgen

import "fmt"

// NameCounts is the per-run collision counter. It is threaded through
// extraction in module processing order and discarded after the run.
type NameCounts struct {
	seen  map[string]int
	taken map[string]bool
}

// NewNameCounts returns an empty counter for one run
func NewNameCounts() *NameCounts {
	return &NameCounts{
		seen:  make(map[string]int),
		taken: make(map[string]bool),
	}
}

// Claim records one more occurrence of name and returns the name to emit.
// The first occurrence keeps its name, the Nth becomes name_N. A candidate
// already emitted (a declared Foo_2, say) is skipped so names stay unique.
func (c *NameCounts) Claim(name string) string {
	for {
		c.seen[name]++
		candidate := name
		if n := c.seen[name]; n > 1 {
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		if !c.taken[candidate] {
			c.taken[candidate] = true
			return candidate
		}
	}
}
