// Package assert provides internal invariant assertions for debug builds.
//
// Assertions are enabled by default and panic with a formatted message when
// they fail. Building with the assertions_disabled tag compiles every
// assertion down to a no-op, which is how release builds should be produced:
//
//	go build -tags assertions_disabled ./...
//
// The sorted containers use these assertions to re-verify their ordering
// invariant after construction and mutation. A failure there indicates a key
// function that is not a pure total order (for example, one that reads
// mutable external state); that is a caller contract violation, so it is
// surfaced loudly in debug builds rather than checked at runtime in release
// builds.
package assert
