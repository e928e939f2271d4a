//go:build bandtrace_debug

package pattern

// debugAssert panics with err if cond is false. It only exists in
// binaries built with the bandtrace_debug tag; release builds use the
// no-op in debug_off.go, per spec.md's "must abort in debug builds;
// must not fire in release."
func debugAssert(cond bool, err error) {
	if !cond {
		panic(err)
	}
}
