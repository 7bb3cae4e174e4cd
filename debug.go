//go:build sdecs_debug

package sdecs

// debugInvariants enables sparse/dense consistency checks after every store
// mutation. Build with -tags sdecs_debug to turn them on.
const debugInvariants = true
