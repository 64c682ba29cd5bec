package core

import "fmt"

// A nameKind tags which of the two disjoint namespaces a Name belongs to.
type nameKind uint8

const (
	userKind nameKind = iota
	systemKind
)

// A Name is a totally ordered, opaque variable identifier. Names are
// partitioned into two disjoint namespaces: user names, supplied by the
// caller through UserName, and system names, allocated internally by the
// solver's modulus trick (see State.freshName). System names always sort
// strictly larger than every user name, which trivially satisfies the
// weaker requirement that a system name outrank every user name that
// existed at the time it was allocated.
//
// Names start at 0 within each namespace, keeping identifiers compact.
type Name struct {
	kind nameKind
	id   int64
}

// UserName converts a caller-supplied integer into a user Name.
func UserName(i int64) Name {
	return Name{kind: userKind, id: i}
}

// FromName returns the integer underlying a user Name, and true, or
// (0, false) if n is a system name.
func FromName(n Name) (int64, bool) {
	if n.kind != userKind {
		return 0, false
	}
	return n.id, true
}

// IsUser reports whether n belongs to the user namespace.
func (n Name) IsUser() bool {
	return n.kind == userKind
}

// Less is the total order fixed by this implementation as the
// deterministic tie-break: user names sort before system names, and
// within a namespace names sort by their integer id.
func (n Name) Less(m Name) bool {
	if n.kind != m.kind {
		return n.kind < m.kind
	}
	return n.id < m.id
}

func (n Name) String() string {
	if n.kind == userKind {
		return fmt.Sprintf("x%d", n.id)
	}
	return fmt.Sprintf("v%d", n.id)
}
