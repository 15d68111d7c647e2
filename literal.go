package delimited

import (
	"fmt"
	"unicode/utf16"
)

// The default delimiter literals are fixed internal data shared by every
// character representation this package renders to, so they must stay within
// the 7-bit range common to all of them. asciiLit enforces that and returns
// the literal unchanged; a violation is a programming error and surfaces as a
// panic during package init, never during rendering.
func asciiLit(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] > 0x7F {
			panic(fmt.Sprintf("delimited: default literal %q is not 7-bit clean", s))
		}
	}
	return s
}

// utf16Units converts a string into UTF-16 code units. Default literals pass
// through asciiLit first, so for those this is a plain widening copy;
// caller-supplied text may need surrogate pairs.
func utf16Units(s string) []uint16 {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			ascii = false
			break
		}
	}
	if ascii {
		out := make([]uint16, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = uint16(s[i])
		}
		return out
	}
	return utf16.Encode([]rune(s))
}
