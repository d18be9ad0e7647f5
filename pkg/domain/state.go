package domain

import "fmt"

// State is an ordered sequence of n bits encoded as a string of '0' and '1'
// characters, bit 0 leftmost. States are immutable values; equality and map
// hashing follow bit content.
type State string

// Width returns the number of variables in the state.
func (s State) Width() int { return len(s) }

// Valid reports whether the state consists only of '0' and '1' characters
// and is non-empty.
func (s State) Valid() bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// Bit returns the value of bit i as a bool.
func (s State) Bit(i int) bool { return s[i] == '1' }

// Flip returns a copy of the state with bit i inverted.
func (s State) Flip(i int) State {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return State(b)
}

// SetBit returns a copy of the state with bit i forced to v.
func (s State) SetBit(i int, v bool) State {
	b := []byte(s)
	if v {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return State(b)
}

// Hamming returns the number of bit positions in which s and t differ.
// Both states must have the same width.
func (s State) Hamming(t State) int {
	d := 0
	for i := 0; i < len(s); i++ {
		if s[i] != t[i] {
			d++
		}
	}
	return d
}

// DiffBit returns the index of the single differing bit between s and t,
// or -1 if the states are identical or differ in more than one position.
func (s State) DiffBit(t State) int {
	diff := -1
	for i := 0; i < len(s); i++ {
		if s[i] != t[i] {
			if diff >= 0 {
				return -1
			}
			diff = i
		}
	}
	return diff
}

// Neighbors returns the n states at Hamming distance 1 from s, in bit order.
func (s State) Neighbors() []State {
	out := make([]State, len(s))
	for i := range out {
		out[i] = s.Flip(i)
	}
	return out
}

// Index returns the integer encoding of the state: bit 0 is the most
// significant bit, so "110" maps to 6.
func (s State) Index() int {
	v := 0
	for i := 0; i < len(s); i++ {
		v <<= 1
		if s[i] == '1' {
			v |= 1
		}
	}
	return v
}

// StateFromIndex is the inverse of Index for a given width.
func StateFromIndex(idx, width int) State {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		if idx&1 == 1 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		idx >>= 1
	}
	return State(b)
}

// AllStates enumerates the full state space for width variables in index
// order ("000", "001", ...).
func AllStates(width int) []State {
	out := make([]State, 0, 1<<width)
	for i := 0; i < 1<<width; i++ {
		out = append(out, StateFromIndex(i, width))
	}
	return out
}

// VarName returns the conventional name of variable i ("x1" for bit 0).
func VarName(i int) string { return fmt.Sprintf("x%d", i+1) }

// VarIndex parses a variable name back to its bit index. It returns -1 for
// anything that is not "x" followed by a positive decimal number.
func VarIndex(name string) int {
	if len(name) < 2 || name[0] != 'x' {
		return -1
	}
	n := 0
	for i := 1; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return -1
	}
	return n - 1
}
