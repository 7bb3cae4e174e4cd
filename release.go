//go:build !sdecs_debug

package sdecs

const debugInvariants = false
