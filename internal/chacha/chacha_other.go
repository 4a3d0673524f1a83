//go:build !amd64 && !arm64 && !nosimd

package chacha

// The lane-parallel path carries no architecture-specific code, so it is the
// default on targets without a CPU probe.
const useWide = true
