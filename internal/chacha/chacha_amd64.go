//go:build amd64 && !nosimd

package chacha

import "golang.org/x/sys/cpu"

// useWide is set if the current CPU has 128-bit vector support for the
// lane-parallel path. SSE2 is architecturally guaranteed on amd64, but the
// probe keeps the selection explicit and uniform across architectures.
var useWide = cpu.X86.HasSSE2 //nolint:gochecknoglobals // should only check once
