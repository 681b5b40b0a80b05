//go:build !disarium_debug

package disarium

const debugChecks = false
