//go:build !flatmapdebug

package flatmap

const debugChecks = false
