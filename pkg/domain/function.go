package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Literal is a possibly negated variable reference inside a product term.
type Literal struct {
	Var     int // bit index, 0-based
	Negated bool
}

// String renders the literal using conventional variable names ("~x3").
func (l Literal) String() string {
	if l.Negated {
		return "~" + VarName(l.Var)
	}
	return VarName(l.Var)
}

// Term is a conjunction of literals. The empty term is the constant true.
type Term []Literal

// Eval evaluates the conjunction against a state.
func (t Term) Eval(s State) bool {
	for _, l := range t {
		if s.Bit(l.Var) == l.Negated {
			return false
		}
	}
	return true
}

// String renders the term with literals in variable order, parenthesized
// when it has more than one literal.
func (t Term) String() string {
	if len(t) == 0 {
		return "1"
	}
	lits := make([]Literal, len(t))
	copy(lits, t)
	sort.Slice(lits, func(i, j int) bool {
		if lits[i].Var != lits[j].Var {
			return lits[i].Var < lits[j].Var
		}
		return !lits[i].Negated && lits[j].Negated
	})
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

// MintermOf builds the full product term that is true exactly on s.
func MintermOf(s State) Term {
	t := make(Term, s.Width())
	for i := 0; i < s.Width(); i++ {
		t[i] = Literal{Var: i, Negated: !s.Bit(i)}
	}
	return t
}

// SOP is a Boolean function in sum-of-products form: a disjunction of
// product terms. No terms is the constant false; a single empty term is the
// constant true.
type SOP struct {
	Terms []Term
}

// ConstFalse returns the SOP encoding of the constant 0.
func ConstFalse() SOP { return SOP{} }

// ConstTrue returns the SOP encoding of the constant 1.
func ConstTrue() SOP { return SOP{Terms: []Term{{}}} }

// IsConstFalse reports whether the expression has no terms.
func (f SOP) IsConstFalse() bool { return len(f.Terms) == 0 }

// IsConstTrue reports whether some term is empty (a tautological product).
func (f SOP) IsConstTrue() bool {
	for _, t := range f.Terms {
		if len(t) == 0 {
			return true
		}
	}
	return false
}

// Eval evaluates the disjunction against a state.
func (f SOP) Eval(s State) bool {
	for _, t := range f.Terms {
		if t.Eval(s) {
			return true
		}
	}
	return false
}

// Vars returns the sorted set of variable indices the expression mentions.
func (f SOP) Vars() []int {
	seen := map[int]bool{}
	for _, t := range f.Terms {
		for _, l := range t {
			seen[l.Var] = true
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// String renders the expression with terms sorted for deterministic output.
// Constants render as "0" and "1".
func (f SOP) String() string {
	if f.IsConstFalse() {
		return "0"
	}
	if f.IsConstTrue() {
		return "1"
	}
	parts := make([]string, len(f.Terms))
	for i, t := range f.Terms {
		parts[i] = t.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, " | ")
}

// EquivalentTo reports semantic equality: agreement on all 2^width inputs.
func (f SOP) EquivalentTo(g SOP, width int) bool {
	for _, s := range AllStates(width) {
		if f.Eval(s) != g.Eval(s) {
			return false
		}
	}
	return true
}

// FunctionSet maps variable names ("x1", "x2", ...) to their update
// functions. A well-formed set has one function per variable of the network.
type FunctionSet map[string]SOP

// Width returns the number of variables in the network.
func (fs FunctionSet) Width() int { return len(fs) }

// Names returns the variable names in bit order.
func (fs FunctionSet) Names() []string {
	out := make([]string, 0, len(fs))
	for name := range fs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return VarIndex(out[i]) < VarIndex(out[j]) })
	return out
}

// Validate checks that the variable names form exactly x1..xn and that no
// expression references a variable outside that range.
func (fs FunctionSet) Validate() error {
	n := len(fs)
	for name, f := range fs {
		idx := VarIndex(name)
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: variable %q is not one of x1..x%d", ErrMalformedInput, name, n)
		}
		for _, v := range f.Vars() {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: function %s references undefined variable %s", ErrMalformedInput, name, VarName(v))
			}
		}
	}
	return nil
}
