package delimited

import "reflect"

// --- Core Shape Interfaces ---

// Pairer provides the two components of a pair-like value. Implement it to
// render a custom type as "first: second".
type Pairer interface {
	Pair() (first, second any)
}

// Tupler provides the components of a fixed-arity tuple-like value.
// Implement it to render a custom type as delimiter-joined components.
type Tupler interface {
	Tuple() []any
}

// Pair is a ready-made two-component value.
type Pair struct {
	First  any
	Second any
}

// Pair implements [Pairer].
func (p Pair) Pair() (any, any) { return p.First, p.Second }

// Tuple is a ready-made tuple value. Unlike a slice, a Tuple renders its
// components even when they have mixed types, and an empty Tuple is an
// arity-zero tuple rather than an empty sequence; both render identically.
type Tuple []any

// Tuple implements [Tupler].
func (t Tuple) Tuple() []any { return t }

// shape is the structural category that selects a rendering strategy for a
// value's type.
type shape int

const (
	shapePair shape = iota
	shapeTuple
	shapeText
	shapeSequence
	shapeFallback
)

// classify resolves the rendering strategy for v. The shape is a property of
// v's type, resolved once per recursive call, with fixed precedence
// pair > tuple > text > sequence > fallback. Text must come before sequence:
// strings and byte slices are also sequences, and classifying them as such
// would delimit them character by character.
//
// Text covers values of string kind, byte slices, and one level of pointer
// indirection over either. A named string type that implements fmt.Stringer
// still classifies as text and renders its underlying string; other Stringer
// types land in fallback, which honors String.
func classify(v any) shape {
	switch v.(type) {
	case Pairer:
		return shapePair
	case Tupler:
		return shapeTuple
	case nil:
		return shapeFallback
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.String:
		return shapeText
	case reflect.Slice:
		if isByteSlice(t) {
			return shapeText
		}
		return shapeSequence
	case reflect.Array, reflect.Map:
		return shapeSequence
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.String || isByteSlice(t.Elem()) {
			return shapeText
		}
	}
	return shapeFallback
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}
