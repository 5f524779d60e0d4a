// SPDX-License-Identifier: Unlicense OR MIT

// Package unsafeslice converts between typed slices and the raw byte
// views that native APIs consume.
package unsafeslice

import "unsafe"

// BytesView returns a byte slice view of s.
func BytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var t T
	sz := int(unsafe.Sizeof(t))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}

// Of returns an n-byte slice backed by the (native) pointer p.
func Of(p uintptr, n int) []byte {
	if p == 0 || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// GoString converts a NUL-terminated C string to a Go string.
func GoString(s []byte) string {
	for i, v := range s {
		if v == 0 {
			return string(s[:i])
		}
	}
	return string(s)
}
