//go:build !unix && !windows

package StTable

import "unsafe"

func cString(p Data) string {
	if p == 0 {
		return ""
	}
	b := (*byte)(unsafe.Pointer(p))
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(b), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(b, n))
}
