package symmetry

import "github.com/banshee-data/symmetry.report/internal/geom"

// LineSet is the registry of candidate directions tested during one
// search run, partitioned into confirmed-symmetric and known
// non-symmetric keys. Confirmed entries keep their first representative
// direction and their insertion order. A LineSet belongs to a single
// run and is never shared between goroutines.
type LineSet struct {
	symmetric    map[DirectionKey]geom.Point2D
	order        []DirectionKey
	nonSymmetric map[DirectionKey]struct{}
}

// NewLineSet returns an empty registry.
func NewLineSet() *LineSet {
	return &LineSet{
		symmetric:    make(map[DirectionKey]geom.Point2D),
		nonSymmetric: make(map[DirectionKey]struct{}),
	}
}

// Add records line under its canonical key on the given side. Writes
// are first-write-wins: a key already present on that side keeps its
// original representative.
func (ls *LineSet) Add(line geom.Point2D, symmetric bool) {
	key := LineKey(line)
	if symmetric {
		if _, ok := ls.symmetric[key]; !ok {
			ls.symmetric[key] = line
			ls.order = append(ls.order, key)
		}
		return
	}
	if _, ok := ls.nonSymmetric[key]; !ok {
		ls.nonSymmetric[key] = struct{}{}
	}
}

// Contains reports whether line's key is already confirmed symmetric,
// or, when checkNonSymmetric is set, known non-symmetric. The search
// uses it to prune repeat validation of equivalent candidates.
func (ls *LineSet) Contains(line geom.Point2D, checkNonSymmetric bool) bool {
	key := LineKey(line)
	if _, ok := ls.symmetric[key]; ok {
		return true
	}
	if checkNonSymmetric {
		_, ok := ls.nonSymmetric[key]
		return ok
	}
	return false
}

// SymmetricDirections returns the confirmed keys in insertion order.
func (ls *LineSet) SymmetricDirections() []DirectionKey {
	out := make([]DirectionKey, len(ls.order))
	copy(out, ls.order)
	return out
}

// SymmetricLines returns the representative direction for each
// confirmed key, in insertion order.
func (ls *LineSet) SymmetricLines() []geom.Point2D {
	out := make([]geom.Point2D, 0, len(ls.order))
	for _, key := range ls.order {
		out = append(out, ls.symmetric[key])
	}
	return out
}

// Line returns the representative direction stored for key.
func (ls *LineSet) Line(key DirectionKey) (geom.Point2D, bool) {
	line, ok := ls.symmetric[key]
	return line, ok
}
