//go:build nosimd

package chacha

// With the nosimd tag, only the scalar backend runs.
const useWide = false
