package delimited

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidDelimiters = errors.New("invalid delimiters")
)

// Render wraps v for delimiter-separated output with the default delimiters.
// The returned Renderable holds v itself (not a copy of what v references),
// so it is valid only as long as v is; the usual pattern is one output
// expression:
//
//	delimited.Render([]int{1, 2, 3}).WriteTo(os.Stdout) // 1, 2, 3
//	s := delimited.Render(pairs).Delimiter(" | ").String()
func Render(v any) *Renderable {
	return &Renderable{value: v, delims: DefaultDelimiters()}
}

// RenderWith is [Render] with an explicit delimiter set.
func RenderWith(v any, d Delimiters) *Renderable {
	return &Renderable{value: v, delims: d}
}

// RenderSeq wraps an iterator sequence for delimiter-separated output. The
// sequence must be finite and is iterated once per output operation.
func RenderSeq[T any](seq iter.Seq[T]) *Renderable {
	return &Renderable{seq: anySeq(seq), isSeq: true, delims: DefaultDelimiters()}
}

// RenderSeqWith is [RenderSeq] with an explicit delimiter set.
func RenderSeqWith[T any](seq iter.Seq[T], d Delimiters) *Renderable {
	return &Renderable{seq: anySeq(seq), isSeq: true, delims: d}
}

func anySeq[T any](seq iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		seq(func(v T) bool { return yield(v) })
	}
}

// Renderable binds a value (or an iterator sequence) to a delimiter
// snapshot. It does not own the wrapped value; create one per call site and
// consume it with [Renderable.WriteTo] or [Renderable.String].
type Renderable struct {
	value  any
	seq    iter.Seq[any]
	isSeq  bool
	delims Delimiters
}

// --- Chainable setters ---
// Each setter mutates the Renderable's delimiter snapshot and returns the
// Renderable so calls can be chained:
//
//	delimited.Render(items).Delimiter(" - ").Empty("Empty").WriteTo(w)

// Delimiter sets both Top and SubDelim (but not PairDelim).
func (r *Renderable) Delimiter(s string) *Renderable {
	r.delims.Top = s
	r.delims.SubDelim = s
	return r
}

// TopDelim sets the top-level delimiter only.
func (r *Renderable) TopDelim(s string) *Renderable { r.delims.Top = s; return r }

// SubPrefix sets the nested-collection prefix.
func (r *Renderable) SubPrefix(s string) *Renderable { r.delims.SubPrefix = s; return r }

// SubDelim sets the nested-collection delimiter.
func (r *Renderable) SubDelim(s string) *Renderable { r.delims.SubDelim = s; return r }

// SubSuffix sets the nested-collection suffix.
func (r *Renderable) SubSuffix(s string) *Renderable { r.delims.SubSuffix = s; return r }

// PairPrefix sets the nested-pair prefix.
func (r *Renderable) PairPrefix(s string) *Renderable { r.delims.PairPrefix = s; return r }

// PairDelim sets the pair delimiter, applied at every level.
func (r *Renderable) PairDelim(s string) *Renderable { r.delims.PairDelim = s; return r }

// PairSuffix sets the nested-pair suffix.
func (r *Renderable) PairSuffix(s string) *Renderable { r.delims.PairSuffix = s; return r }

// TopAsSub sets whether the top-level collection renders as a nested one.
func (r *Renderable) TopAsSub(b bool) *Renderable { r.delims.TopAsSub = b; return r }

// AsSub is shorthand for TopAsSub(true); pass an explicit bool to override.
func (r *Renderable) AsSub(b ...bool) *Renderable {
	r.delims.TopAsSub = len(b) == 0 || b[0]
	return r
}

// Empty sets the placeholder emitted for empty collections and empty text.
func (r *Renderable) Empty(s string) *Renderable { r.delims.Empty = s; return r }

// --- Output ---

// WriteTo renders the wrapped value to w and reports the number of bytes
// written. It implements [io.WriterTo]. Rendering never fails on its own;
// any error is a write error from w.
func (r *Renderable) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	var err error
	if r.isSeq {
		err = renderSeq(cw, r.seq, r.delims, r.delims.TopAsSub)
	} else {
		err = render(cw, r.value, r.delims, r.delims.TopAsSub)
	}
	return cw.n, err
}

// String renders the wrapped value to a string, so a Renderable can be
// dropped directly into fmt verbs and string concatenation.
func (r *Renderable) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
