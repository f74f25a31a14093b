package adjudicator

import "fmt"

// InvariantError marks a violation of one of this package's input
// invariants (I1-I4): an order at a province with no unit, a move-only
// helper handed a non-move order, a destination absent from the map. These
// are programmer errors, not runtime conditions a caller should branch on,
// so functions that detect them panic with an *InvariantError rather than
// returning an error value.
type InvariantError struct {
	Province Province
	Message  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("adjudicator: invariant violated at %s: %s", e.Province, e.Message)
}

func invariantf(prov Province, format string, args ...any) {
	panic(&InvariantError{Province: prov, Message: fmt.Sprintf(format, args...)})
}
