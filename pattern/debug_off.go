//go:build !bandtrace_debug

package pattern

// debugAssert is a no-op in release builds; see debug_on.go.
func debugAssert(cond bool, err error) {}
