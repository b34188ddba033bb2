//go:build flatmapdebug

package flatmap

// Built with -tags flatmapdebug, the unchecked constructors validate their
// input and panic when the caller broke the precondition.
const debugChecks = true
