//go:build arm64 && !nosimd

package chacha

import "golang.org/x/sys/cpu"

// useWide is set if the current CPU reports Advanced SIMD support for the
// lane-parallel path.
var useWide = cpu.ARM64.HasASIMD //nolint:gochecknoglobals // should only check once
