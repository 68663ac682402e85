// Package simd provides portable byte-classification scans used by the
// codec's ASCII fast path and by the cursor-scanning helpers in ustring.
//
// The teacher this package is adapted from dispatches real AVX2 assembly on
// amd64; this repository's hot path is a capture-producing backtracking VM
// rather than a SIMD-searchable DFA, so only the detection-and-fallback
// shape is kept (see DESIGN.md). golang.org/x/sys/cpu is still consulted so
// the wider chunk size is only selected on hardware known to have a fast
// unaligned 8-byte load path; everything below it is portable Go.
package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// useWideChunks reports whether the 8-byte SWAR path should be preferred
// over the byte-at-a-time path. On x86-64 this is effectively always true;
// kept as a variable (rather than a build tag) so tests can force either
// path deterministically.
var useWideChunks = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

const hi8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte in data has its high bit clear.
func IsASCII(data []byte) bool {
	return IndexNonASCII(data) < 0
}

// IndexNonASCII returns the index of the first byte with its high bit set,
// or -1 if data is entirely ASCII.
func IndexNonASCII(data []byte) int {
	n := len(data)
	if !useWideChunks || n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return i
			}
		}
		return -1
	}

	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if chunk&hi8 != 0 {
			// Narrow down to the exact byte within the chunk.
			for i := idx; i < idx+8; i++ {
				if data[i] >= 0x80 {
					return i
				}
			}
		}
		idx += 8
	}
	for ; idx < n; idx++ {
		if data[idx] >= 0x80 {
			return idx
		}
	}
	return -1
}

// CountNonASCII returns the number of bytes in data with their high bit set.
func CountNonASCII(data []byte) int {
	count := 0
	for _, b := range data {
		if b >= 0x80 {
			count++
		}
	}
	return count
}
