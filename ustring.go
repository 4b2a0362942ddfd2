package macroui

import "unicode/utf8"

// minUStringCap is the capacity a UString allocates on its first push.
const minUStringCap = 16

// UString is a growable buffer of Unicode code points. Its length is the
// logical code-point count, independent of the source byte encoding.
type UString struct {
	buf []rune
}

// NewUString decodes s as UTF-8, one code point at a time. Invalid byte
// sequences decode to utf8.RuneError.
func NewUString(s string) *UString {
	u := &UString{}
	u.AppendString(s)
	return u
}

// Len returns the number of code points.
func (u *UString) Len() int {
	return len(u.buf)
}

// At returns the code point at index i.
func (u *UString) At(i int) rune {
	return u.buf[i]
}

// Runes returns a copy of the code points.
func (u *UString) Runes() []rune {
	out := make([]rune, len(u.buf))
	copy(out, u.buf)
	return out
}

// PushRune appends one code point, doubling capacity when full.
func (u *UString) PushRune(r rune) {
	if len(u.buf) == cap(u.buf) {
		u.grow(len(u.buf) + 1)
	}
	u.buf = append(u.buf, r)
}

// grow doubles capacity until it holds at least n code points.
func (u *UString) grow(n int) {
	c := cap(u.buf)
	if c < minUStringCap {
		c = minUStringCap
	}
	for c < n {
		c <<= 1
	}
	if c == cap(u.buf) {
		return
	}
	nb := make([]rune, len(u.buf), c)
	copy(nb, u.buf)
	u.buf = nb
}

// AppendString decodes s as UTF-8 and appends each code point.
func (u *UString) AppendString(s string) {
	b := []byte(s)
	for len(b) > 0 {
		r, size := DecodeCodePoint(b)
		u.PushRune(r)
		b = b[size:]
	}
}

// Append concatenates the code points of other.
func (u *UString) Append(other *UString) {
	if other == nil {
		return
	}
	u.grow(len(u.buf) + len(other.buf))
	u.buf = append(u.buf, other.buf...)
}

// TrimEnd removes the last min(n, Len()) code points and reports how many
// were removed.
func (u *UString) TrimEnd(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(u.buf) {
		n = len(u.buf)
	}
	u.buf = u.buf[:len(u.buf)-n]
	return n
}

// Reset empties the string, keeping its capacity.
func (u *UString) Reset() {
	u.buf = u.buf[:0]
}

// Bytes encodes the code points as UTF-8.
func (u *UString) Bytes() []byte {
	out := make([]byte, 0, len(u.buf))
	for _, r := range u.buf {
		out = EncodeCodePoint(out, r)
	}
	return out
}

// String encodes the code points as a UTF-8 string.
func (u *UString) String() string {
	return string(u.Bytes())
}

// DecodeCodePoint decodes the first UTF-8 sequence in b, returning the code
// point and the number of bytes consumed. An empty b yields (0, 0).
func DecodeCodePoint(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	return utf8.DecodeRune(b)
}

// EncodeCodePoint appends the UTF-8 encoding of r to dst. Code points above
// U+10FFFF and surrogate halves encode as utf8.RuneError.
func EncodeCodePoint(dst []byte, r rune) []byte {
	return utf8.AppendRune(dst, r)
}
