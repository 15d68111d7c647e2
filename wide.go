package delimited

import (
	"io"
	"iter"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ByteOrder selects the byte order of UTF-16 output.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// RenderUTF16 wraps v for delimiter-separated output in UTF-16. It is a
// parameterization of [Render] over a second character representation, not a
// different algorithm: the same recursive rendering runs behind a
// transcoding sink. Output is little-endian without a byte order mark by
// default; see [UTF16Renderable.ByteOrder] and [UTF16Renderable.BOM].
func RenderUTF16(v any) *UTF16Renderable {
	return &UTF16Renderable{r: Render(v)}
}

// RenderUTF16With is [RenderUTF16] with an explicit delimiter set.
func RenderUTF16With(v any, d Delimiters) *UTF16Renderable {
	return &UTF16Renderable{r: RenderWith(v, d)}
}

// RenderSeqUTF16 wraps an iterator sequence for UTF-16 output.
func RenderSeqUTF16[T any](seq iter.Seq[T]) *UTF16Renderable {
	return &UTF16Renderable{r: RenderSeq(seq)}
}

// RenderSeqUTF16With is [RenderSeqUTF16] with an explicit delimiter set.
func RenderSeqUTF16With[T any](seq iter.Seq[T], d Delimiters) *UTF16Renderable {
	return &UTF16Renderable{r: RenderSeqWith(seq, d)}
}

// UTF16Renderable is a [Renderable] whose output operation transcodes to
// UTF-16. It exposes the same chainable setters.
type UTF16Renderable struct {
	r      *Renderable
	order  ByteOrder
	useBOM bool
}

// Delimiter sets both Top and SubDelim (but not PairDelim).
func (u *UTF16Renderable) Delimiter(s string) *UTF16Renderable { u.r.Delimiter(s); return u }

// TopDelim sets the top-level delimiter only.
func (u *UTF16Renderable) TopDelim(s string) *UTF16Renderable { u.r.TopDelim(s); return u }

// SubPrefix sets the nested-collection prefix.
func (u *UTF16Renderable) SubPrefix(s string) *UTF16Renderable { u.r.SubPrefix(s); return u }

// SubDelim sets the nested-collection delimiter.
func (u *UTF16Renderable) SubDelim(s string) *UTF16Renderable { u.r.SubDelim(s); return u }

// SubSuffix sets the nested-collection suffix.
func (u *UTF16Renderable) SubSuffix(s string) *UTF16Renderable { u.r.SubSuffix(s); return u }

// PairPrefix sets the nested-pair prefix.
func (u *UTF16Renderable) PairPrefix(s string) *UTF16Renderable { u.r.PairPrefix(s); return u }

// PairDelim sets the pair delimiter, applied at every level.
func (u *UTF16Renderable) PairDelim(s string) *UTF16Renderable { u.r.PairDelim(s); return u }

// PairSuffix sets the nested-pair suffix.
func (u *UTF16Renderable) PairSuffix(s string) *UTF16Renderable { u.r.PairSuffix(s); return u }

// TopAsSub sets whether the top-level collection renders as a nested one.
func (u *UTF16Renderable) TopAsSub(b bool) *UTF16Renderable { u.r.TopAsSub(b); return u }

// AsSub is shorthand for TopAsSub(true); pass an explicit bool to override.
func (u *UTF16Renderable) AsSub(b ...bool) *UTF16Renderable { u.r.AsSub(b...); return u }

// Empty sets the placeholder emitted for empty collections and empty text.
func (u *UTF16Renderable) Empty(s string) *UTF16Renderable { u.r.Empty(s); return u }

// ByteOrder sets the output byte order (default [LittleEndian]).
func (u *UTF16Renderable) ByteOrder(o ByteOrder) *UTF16Renderable { u.order = o; return u }

// BOM controls whether a byte order mark leads the output (default off).
func (u *UTF16Renderable) BOM(b ...bool) *UTF16Renderable {
	u.useBOM = len(b) == 0 || b[0]
	return u
}

// WriteTo renders the wrapped value to w as UTF-16 bytes and reports the
// number of bytes written. It implements [io.WriterTo].
func (u *UTF16Renderable) WriteTo(w io.Writer) (int64, error) {
	endian := unicode.LittleEndian
	if u.order == BigEndian {
		endian = unicode.BigEndian
	}
	bom := unicode.IgnoreBOM
	if u.useBOM {
		bom = unicode.UseBOM
	}
	cw := &countWriter{w: w}
	tw := transform.NewWriter(cw, unicode.UTF16(endian, bom).NewEncoder())
	_, err := u.r.WriteTo(tw)
	if cerr := tw.Close(); err == nil {
		err = cerr
	}
	return cw.n, err
}

// CodeUnits renders the wrapped value and returns it as UTF-16 code units,
// byte order aside.
func (u *UTF16Renderable) CodeUnits() []uint16 {
	return utf16Units(u.r.String())
}
