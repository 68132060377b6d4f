package codec

import (
	"fmt"
	"unsafe"
)

// rawBytes exposes a header struct as its wire bytes without copying. It
// asserts both the in-memory size and the pointer alignment before
// aliasing; use it for shapes containing multi-byte binary integers.
//
// A failed assertion means the compiler or platform laid the struct out
// differently than the wire contract declares. Archives written through a
// mismatched view would be silently corrupt, so this panics instead of
// returning an error.
func rawBytes[T any](h *T, wire uintptr) []byte {
	if size := unsafe.Sizeof(*h); size != wire {
		panic(fmt.Sprintf("codec: %T is %d bytes in memory, wire format requires %d", *h, size, wire))
	}
	if align := unsafe.Alignof(*h); uintptr(unsafe.Pointer(h))%align != 0 {
		panic(fmt.Sprintf("codec: %T at %p is not %d-byte aligned", *h, h, align))
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(h)), wire)
}

// rawBytesNoAlign is rawBytes minus the alignment assertion, for shapes
// composed entirely of byte arrays. Single-byte fields carry no alignment
// constraint; the size assertion is never skipped.
func rawBytesNoAlign[T any](h *T, wire uintptr) []byte {
	if size := unsafe.Sizeof(*h); size != wire {
		panic(fmt.Sprintf("codec: %T is %d bytes in memory, wire format requires %d", *h, size, wire))
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(h)), wire)
}
