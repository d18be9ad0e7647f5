package domain

import "fmt"

// TruthTable records, for every state and every variable, the state that
// results when that variable is allowed to fire. Entries where the result
// equals the source state mean the update is a no-op there.
type TruthTable map[State]map[string]State

// Width returns the bit width of the table's states, or 0 if empty.
func (tt TruthTable) Width() int {
	for s := range tt {
		return s.Width()
	}
	return 0
}

// Validate checks the structural invariant of the table: for every state s
// and variable x_i, the recorded result matches s at every position except
// possibly i. Any other shape indicates a malformed conversion.
func (tt TruthTable) Validate() error {
	width := tt.Width()
	for s, row := range tt {
		if !s.Valid() || s.Width() != width {
			return fmt.Errorf("%w: state %q is not a %d-bit string", ErrMalformedInput, s, width)
		}
		for name, next := range row {
			i := VarIndex(name)
			if i < 0 || i >= width {
				return fmt.Errorf("%w: state %q has entry for unknown variable %q", ErrMalformedInput, s, name)
			}
			if !next.Valid() || next.Width() != width {
				return fmt.Errorf("%w: result %q for (%q, %s) is not a %d-bit string", ErrMalformedInput, next, s, name, width)
			}
			for j := 0; j < width; j++ {
				if j != i && s[j] != next[j] {
					return fmt.Errorf("%w: result %q for (%q, %s) changes bit %d", ErrMalformedInput, next, s, name, j+1)
				}
			}
		}
	}
	return nil
}
