package tokens

import "fmt"

// StructuralError is the panic value raised when a stream primitive is used
// against its contract: an index out of range, a block lookup on a token that
// does not open a block, or a malformed search pattern. It signals a bug in
// the caller, not bad input.
type StructuralError struct {
	Op    string
	Index int
	Msg   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("tokens: %s at %d: %s", e.Op, e.Index, e.Msg)
}
