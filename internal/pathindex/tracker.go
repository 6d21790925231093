// Package pathindex tracks dot-paths seen while flattening a record tree,
// enforcing spec.md §3.2's uniqueness invariant: "Names are unique across
// the flat field list... no leaf name equals a strict prefix of another
// leaf name."
package pathindex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clicat/gbin/internal/hash"
)

// Tracker records every dot-path flattened so far, detecting exact
// duplicates in O(1) via a 64-bit hash pre-check (adapted from the
// teacher's metric-name collision tracker: hash first, confirm with a
// string compare, since two distinct paths can share a hash).
type Tracker struct {
	byHash map[uint64][]string
	paths  []string
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{byHash: make(map[uint64][]string)}
}

// Track records path, returning an error if path duplicates a path already
// seen. Prefix collisions (one leaf name being a strict prefix of another)
// are checked separately via CheckPrefixes, once all leaves are known,
// since prefix relationships aren't decidable path-by-path during a single
// forward pass with arbitrary insertion order.
func (t *Tracker) Track(path string) error {
	if path == "" {
		return fmt.Errorf("pathindex: empty dot-path")
	}

	h := hash.ID(path)
	for _, existing := range t.byHash[h] {
		if existing == path {
			return fmt.Errorf("pathindex: duplicate path %q", path)
		}
	}

	t.byHash[h] = append(t.byHash[h], path)
	t.paths = append(t.paths, path)

	return nil
}

// Count returns the number of distinct paths tracked.
func (t *Tracker) Count() int {
	return len(t.paths)
}

// Paths returns the tracked paths in the order they were added.
func (t *Tracker) Paths() []string {
	return t.paths
}

// CheckPrefixes verifies that no tracked path is a strict prefix of
// another (spec.md §3.2). Checking only adjacent pairs after a sort is not
// enough: a byte like '!' (0x21) sorts before '.' (0x2E), so for paths
// "a", "a!", "a.b" the sorted order is ["a", "a!", "a.b"] and the
// colliding pair ("a", "a.b") is not adjacent. Instead, for each path p in
// sorted order, every other path with p as a strict prefix must sort
// somewhere in the contiguous run of entries that share p as a byte
// prefix (since "p." also starts with "p"), so it suffices to scan that
// run rather than only the single next neighbor.
func (t *Tracker) CheckPrefixes() error {
	sorted := make([]string, len(t.paths))
	copy(sorted, t.paths)
	sort.Strings(sorted)

	for i := 0; i < len(sorted); i++ {
		p := sorted[i]

		for j := i + 1; j < len(sorted) && strings.HasPrefix(sorted[j], p); j++ {
			if strings.HasPrefix(sorted[j], p+".") {
				return fmt.Errorf("pathindex: %q is a strict prefix of %q", p, sorted[j])
			}
		}
	}

	return nil
}
