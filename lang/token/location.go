package token

import "fmt"

// AnyPos is a sentinel value for Location.Line and Location.Column. When
// either field of a Location holds AnyPos, it compares equal to any other
// value in that field. It exists purely as a test backdoor: it lets tests
// write literal ASTs and tokens without pinning down exact source positions.
const AnyPos = int(^uint(0) >> 1) // the maximum representable int

// Location is a 1-indexed (line, column) pair identifying a point in the
// source buffer a token or AST node was produced from.
type Location struct {
	Line   int
	Column int
}

// Equal reports whether l and other denote the same source position, with
// AnyPos in either component of either operand matching unconditionally.
func (l Location) Equal(other Location) bool {
	lineOK := l.Line == other.Line || l.Line == AnyPos || other.Line == AnyPos
	colOK := l.Column == other.Column || l.Column == AnyPos || other.Column == AnyPos
	return lineOK && colOK
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
