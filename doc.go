// Package delimited renders arbitrary values as delimiter-separated text.
//
// Given a scalar, a pair, a tuple, a sequence, or any nesting of those, the
// package recursively produces "pretty" delimited output with configurable
// prefixes, suffixes, and delimiters at each nesting level. The central
// entry points are [Render] and [RenderSeq], which wrap a value (or an
// iterator sequence) together with a [Delimiters] snapshot:
//
//	delimited.Render([]int{1, 3, 5, 7, 9}).WriteTo(os.Stdout)
//	// 1, 3, 5, 7, 9
//
// Strings are the exception: although a string is a sequence of characters,
// it renders verbatim rather than character by character:
//
//	delimited.Render("Hello").String() // "Hello"
//
// # Shapes
//
// A value's rendering strategy is selected by the shape of its type, in
// fixed precedence order:
//
//   - pair: implements [Pairer] (see [Pair]); map entries render as pairs
//   - tuple: implements [Tupler] (see [Tuple])
//   - text: string kinds and byte slices, rendered verbatim
//   - sequence: slices, arrays, and maps
//   - fallback: everything else, via [fmt.Stringer] or fmt's %v verb
//
// The rules apply recursively, so a map renders its entries as pairs, a
// slice of tuples renders each tuple wrapped in parentheses, and so on:
//
//	m := map[int]string{1: "One", 2: "Two", 3: "Three"}
//	delimited.Render(m).String() // "[1: One], [2: Two], [3: Three]"
//
// # Nesting
//
// The top-level collection is unpunctuated by default; every collection
// nested inside another is wrapped and separated by the Sub delimiters:
//
//	delimited.Render([][]int{{1, 2}, {3}}).String() // "(1, 2), (3)"
//
// Set [Renderable.AsSub] to render the top level as if it were nested:
//
//	delimited.Render([]int{10, 20, 30}).AsSub().String() // "(10, 20, 30)"
//
// Pairs differ from the other collection shapes only in that PairDelim
// applies at the top level too:
//
//	delimited.Render(delimited.Pair{First: 1, Second: "One"}).String() // "1: One"
//
// # Configuration
//
// Every delimiter is a field of [Delimiters]. Override fields through the
// chainable setters on [Renderable], supply a complete set via [RenderWith],
// or load one from YAML with [ParseDelimiters]:
//
//	delimited.Render(items).Delimiter(" - ").Empty("Empty").WriteTo(w)
//
// Empty collections and empty text are not errors; they render as the Empty
// placeholder ("<empty>" by default).
//
// # UTF-16 Output
//
// [RenderUTF16] and [RenderSeqUTF16] mirror the plain entry points but
// transcode the output to UTF-16, with byte order and BOM control. Same
// algorithm, different character representation.
//
// # Lifetime
//
// A Renderable holds the wrapped value itself and does not copy what the
// value references; it is meant to live for one output expression. Rendering
// is synchronous and single-threaded, and assumes a finite, acyclic value
// graph. Mutating the wrapped value concurrently with rendering is a data
// race the caller must avoid.
package delimited
