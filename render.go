package delimited

import (
	"fmt"
	"io"
	"iter"
	"reflect"
	"slices"
	"sort"
)

// render writes v to w, formatted per d. asSub reports whether v is being
// rendered as a child of another collection; it starts as d.TopAsSub for the
// outermost value and is forced true for every recursive call, which is why
// nested collections are always wrapped while the top level is not.
func render(w io.Writer, v any, d Delimiters, asSub bool) error {
	switch classify(v) {
	case shapePair:
		return renderPair(w, v.(Pairer), d, asSub)
	case shapeTuple:
		return renderSeq(w, slices.Values(v.(Tupler).Tuple()), d, asSub)
	case shapeText:
		return renderText(w, v, d)
	case shapeSequence:
		return renderSeq(w, valueSeq(reflect.ValueOf(v)), d, asSub)
	default:
		return renderFallback(w, v)
	}
}

// renderPair is the one strategy where top-level rendering differs from
// simply dropping the wrapping: PairDelim applies at every level, while
// PairPrefix/PairSuffix apply only when nested.
func renderPair(w io.Writer, p Pairer, d Delimiters, asSub bool) error {
	first, second := p.Pair()
	if asSub {
		if err := writeString(w, d.PairPrefix); err != nil {
			return err
		}
	}
	if err := render(w, first, d, true); err != nil {
		return err
	}
	if err := writeString(w, d.PairDelim); err != nil {
		return err
	}
	if err := render(w, second, d, true); err != nil {
		return err
	}
	if asSub {
		return writeString(w, d.PairSuffix)
	}
	return nil
}

// renderSeq handles tuples and sequences alike: wrap when nested, join with
// the effective delimiter, and emit the Empty placeholder when the sequence
// yields nothing. The effective delimiter is computed once per call, not per
// element.
func renderSeq(w io.Writer, seq iter.Seq[any], d Delimiters, asSub bool) error {
	if asSub {
		if err := writeString(w, d.SubPrefix); err != nil {
			return err
		}
	}
	delim := d.Top
	if asSub {
		delim = d.SubDelim
	}
	n := 0
	var seqErr error
	seq(func(el any) bool {
		if n > 0 {
			if seqErr = writeString(w, delim); seqErr != nil {
				return false
			}
		}
		n++
		seqErr = render(w, el, d, true)
		return seqErr == nil
	})
	if seqErr != nil {
		return seqErr
	}
	if n == 0 {
		if err := writeString(w, d.Empty); err != nil {
			return err
		}
	}
	if asSub {
		return writeString(w, d.SubSuffix)
	}
	return nil
}

// renderText writes text verbatim, with no wrapping or delimiting at any
// level. Empty text renders as the Empty placeholder. A nil text pointer is
// a precondition violation, never silently treated as empty.
func renderText(w io.Writer, v any, d Delimiters) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic(fmt.Sprintf("delimited: nil text reference of type %T", v))
		}
		rv = rv.Elem()
	}
	var s string
	if rv.Kind() == reflect.String {
		s = rv.String()
	} else {
		s = string(rv.Bytes())
	}
	if s == "" {
		s = d.Empty
	}
	return writeString(w, s)
}

// renderFallback delegates to the value's own textual representation.
// Delimiters and nesting do not apply here.
func renderFallback(w io.Writer, v any) error {
	if str, ok := v.(fmt.Stringer); ok {
		return writeString(w, str.String())
	}
	_, err := fmt.Fprintf(w, "%v", v)
	return err
}

// valueSeq adapts a reflected slice, array, or map into an element sequence.
// Map entries yield as [Pair] values in sorted key order so that rendering
// the same map twice produces identical output.
func valueSeq(rv reflect.Value) iter.Seq[any] {
	if rv.Kind() == reflect.Map {
		return func(yield func(any) bool) {
			for _, k := range sortedKeys(rv) {
				if !yield(Pair{First: k.Interface(), Second: rv.MapIndex(k).Interface()}) {
					return
				}
			}
		}
	}
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })
	return keys
}

// lessKey orders map keys by their natural value where the kind has one,
// falling back to the fmt rendering otherwise.
func lessKey(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
