package asm

import "fmt"

// FixupKind identifies how a pending branch site encodes its displacement.
// The values are defined by each architecture.
type FixupKind byte

// FixupSite is an already-emitted instruction whose target field is waiting for
// a label to be bound.
type FixupSite struct {
	// Position is the byte offset of the instruction in the code buffer.
	Position int
	Kind     FixupKind
}

// Label is a symbolic branch target.
//
// A label is either unbound, holding the ordered list of sites referencing it,
// or bound to a fixed position in the code buffer. Binding is one-way: a bound
// label never becomes unbound again until Reset.
//
// The zero value is a valid unbound label.
type Label struct {
	position int
	bound    bool
	sites    []FixupSite
}

// IsBound returns true if the label has been bound to a position.
func (l *Label) IsBound() bool {
	return l.bound
}

// IsLinked returns true if the label is unbound and has pending references.
func (l *Label) IsLinked() bool {
	return !l.bound && len(l.sites) > 0
}

// Position returns the bound position of the label.
func (l *Label) Position() int {
	if !l.bound {
		panic("BUG: Position called on an unbound label")
	}
	return l.position
}

// AddFixup records a pending site referencing this unbound label.
func (l *Label) AddFixup(pos int, kind FixupKind) {
	if l.bound {
		panic("BUG: AddFixup called on a bound label")
	}
	l.sites = append(l.sites, FixupSite{Position: pos, Kind: kind})
}

// Bind binds the label to pos and returns the pending sites in the order they were
// recorded. The caller is responsible for patching them.
func (l *Label) Bind(pos int) []FixupSite {
	if l.bound {
		panic(fmt.Errorf("%w: cannot bind at %#x, already bound at %#x", ErrLabelAlreadyBound, pos, l.position))
	}
	sites := l.sites
	l.sites = nil
	l.position, l.bound = pos, true
	return sites
}

// Reset makes the label unbound with no pending sites.
func (l *Label) Reset() {
	l.position, l.bound = 0, false
	l.sites = l.sites[:0]
}

// String implements fmt.Stringer.
func (l *Label) String() string {
	if l.bound {
		return fmt.Sprintf("L@%#x", l.position)
	}
	return fmt.Sprintf("L(unbound, %d refs)", len(l.sites))
}
