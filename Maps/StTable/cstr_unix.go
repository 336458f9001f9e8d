//go:build unix

package StTable

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// cString copies the NUL terminated string at p.
func cString(p Data) string {
	return unix.BytePtrToString((*byte)(unsafe.Pointer(p)))
}
