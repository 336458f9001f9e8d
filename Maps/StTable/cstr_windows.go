//go:build windows

package StTable

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func cString(p Data) string {
	return windows.BytePtrToString((*byte)(unsafe.Pointer(p)))
}
