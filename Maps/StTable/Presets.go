package StTable

import (
	"strings"

	Go_St "github.com/g-m-twostay/go-st"
)

// NumCmp compares keys as numbers.
func NumCmp(a, b Data) int {
	if a != b {
		return 1
	}
	return 0
}

// NumHashFunc is the identity.
func NumHashFunc(n Data) Index {
	return n
}

// StrCmp compares C strings bytewise, like strcmp.
func StrCmp(a, b Data) int {
	return strings.Compare(cString(a), cString(b))
}

// StrHashFunc is FNV-1a 64 of a C string without its terminator.
func StrHashFunc(s Data) Index {
	return Index(Go_St.Fnv1a64(Go_St.Fnv64Offset, cString(s)))
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// StrCaseCmp compares C strings ignoring ASCII case. Unlike strcasecmp, a shorter string always sorts first, no
// matter its contents.
func StrCaseCmp(a, b Data) int {
	s1, s2 := cString(a), cString(b)
	if len(s1) != len(s2) {
		if len(s1) > len(s2) {
			return 1
		}
		return -1
	}
	for i := 0; i < len(s1); i++ {
		if c1, c2 := lower(s1[i]), lower(s2[i]); c1 != c2 {
			if c1 > c2 {
				return 1
			}
			return -1
		}
	}
	return 0
}

// StrNCaseCmp compares at most n bytes of two C strings ignoring ASCII case, stopping at the first terminator.
func StrNCaseCmp(a, b Data, n uintptr) int {
	s1, s2 := cString(a), cString(b)
	for i := 0; uintptr(i) < n; i++ {
		var c1, c2 byte
		if i < len(s1) {
			c1 = lower(s1[i])
		}
		if i < len(s2) {
			c2 = lower(s2[i])
		}
		switch {
		case c1 == 0 && c2 == 0:
			return 0
		case c1 > c2:
			return 1
		case c1 < c2:
			return -1
		}
	}
	return 0
}

// StrCaseHashFunc is StrHashFunc of the ASCII lowercased string.
func StrCaseHashFunc(s Data) Index {
	return Index(Go_St.Fnv1a64Fold(Go_St.Fnv64Offset, cString(s), lower))
}

var (
	NumHash     = &HashType{NumCmp, NumHashFunc}
	StrHash     = &HashType{StrCmp, StrHashFunc}
	StrCaseHash = &HashType{StrCaseCmp, StrCaseHashFunc}
)
