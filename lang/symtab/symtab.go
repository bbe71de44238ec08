// Package symtab implements the scoped symbol table shared by the type
// checker (values are ast.Type), the IR generator (values are IR variable
// names) and the tree-walking interpreter (values are runtime values). The
// generic parameter is the only thing that varies between the three roles.
//
// Internally each scope frame is a swiss.Map rather than a plain Go map,
// following the same choice the teacher's machine package makes for its own
// name-keyed lookup table.
package symtab

import "github.com/dolthub/swiss"

// Kind distinguishes the two ways a Table operation can fail.
type Kind int8

const (
	Undefined    Kind = iota // lookup found no binding in any frame
	Redefinition             // insert targeted a name already bound in the top frame
)

// SymbolTableError reports an undefined symbol or a redefinition in the
// same scope.
type SymbolTableError struct {
	Name string
	Kind Kind
}

func (e *SymbolTableError) Error() string {
	if e.Kind == Redefinition {
		return "'" + e.Name + "' is already defined in this scope"
	}
	return "'" + e.Name + "' is not defined"
}

const defaultFrameSize = 8

// Table is a stack of name -> T mappings. The innermost frame (the top of
// the stack) is where Insert writes; Lookup walks from the top down and
// returns the nearest binding.
type Table[T any] struct {
	frames []*swiss.Map[string, T]
}

// New returns a Table with a single, empty bottom frame. Callers that need
// a pre-seeded bottom frame (e.g. with intrinsic signatures) should Insert
// into it immediately after construction, before pushing any further scope.
func New[T any]() *Table[T] {
	t := &Table[T]{}
	t.PushScope()
	return t
}

// PushScope opens a new, innermost frame.
func (t *Table[T]) PushScope() {
	t.frames = append(t.frames, swiss.NewMap[string, T](defaultFrameSize))
}

// PopScope discards the innermost frame. It panics if called on a Table
// with only its bottom frame left, which would indicate a scoping bug in
// the caller (push/pop calls must nest).
func (t *Table[T]) PopScope() {
	if len(t.frames) <= 1 {
		panic("symtab: PopScope called with no open scope")
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Lookup walks the frame stack top-down and returns the nearest binding for
// name, or a SymbolTableError if name is bound in no frame.
func (t *Table[T]) Lookup(name string) (T, error) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if v, ok := t.frames[i].Get(name); ok {
			return v, nil
		}
	}
	var zero T
	return zero, &SymbolTableError{Name: name, Kind: Undefined}
}

// Insert writes name -> value to the top frame. It fails if name is already
// bound in that frame; shadowing an outer frame is permitted.
func (t *Table[T]) Insert(name string, value T) error {
	top := t.frames[len(t.frames)-1]
	if _, ok := top.Get(name); ok {
		return &SymbolTableError{Name: name, Kind: Redefinition}
	}
	top.Put(name, value)
	return nil
}

// Assign overwrites the nearest existing binding of name, walking the frame
// stack top-down the same way Lookup does, without creating a new binding.
// It fails if name is bound in no frame.
func (t *Table[T]) Assign(name string, value T) error {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if _, ok := t.frames[i].Get(name); ok {
			t.frames[i].Put(name, value)
			return nil
		}
	}
	return &SymbolTableError{Name: name, Kind: Undefined}
}

// Depth reports the number of open scope frames, mostly useful in tests
// asserting push/pop balance.
func (t *Table[T]) Depth() int { return len(t.frames) }
