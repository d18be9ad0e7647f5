/*
Package domain contains the core value types of the boolnet toolkit.

It defines the fundamental entities of an asynchronous Boolean network:
bit-string States, single-bit-flip TransitionSets, sum-of-products update
functions (SOP) and per-variable TruthTables. This package is kept pure and
free of external dependencies so that generators, converters and the
simplifier can share it without pulling in any I/O concerns.
*/
package domain
