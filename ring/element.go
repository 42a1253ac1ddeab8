package ring

// Element is a member of a structure. Construction and arithmetic live
// with the concrete structure packages; the core only needs elements to
// know their parent, render themselves, and compare semantically.
//
// The distinguished elements returned by Structure.Zero and Structure.One
// are cached by identity, so reference equality on the interface value is
// a valid fast path for "is this the cached zero/one".
type Element interface {
	// Parent returns the structure this element belongs to. The
	// reference is non-owning.
	Parent() *Structure

	// Equal reports semantic equality with another element. Elements of
	// different parents are never equal.
	Equal(other Element) bool

	// String renders the element for display.
	String() string
}
