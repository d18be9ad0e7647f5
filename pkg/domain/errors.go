package domain

import "errors"

// ErrStructuralInfeasible is returned when requested structural parameters
// cannot be met: the parentless and attractor groups exceed the state-space
// capacity, or no single-bit-flip cycle of a requested length exists.
var ErrStructuralInfeasible = errors.New("structurally infeasible")

// ErrGenerationExhausted is returned when the bounded generate-and-verify
// loop runs out of retries before meeting the attractor target. It is an
// expected, reportable outcome rather than a crash.
var ErrGenerationExhausted = errors.New("generation retries exhausted")

// ErrMalformedInput is returned when a transitions, functions or truth-table
// document violates its schema.
var ErrMalformedInput = errors.New("malformed input")

// ErrUnsatisfiableCover signals an internal invariant violation in the
// simplifier: a minterm with no covering prime implicant. It indicates a
// defect upstream, not a user error.
var ErrUnsatisfiableCover = errors.New("unsatisfiable cover")
