package delimited

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Delimiters holds every delimiter and placeholder used while rendering.
// Throughout this package, "collection" means a sequence, tuple, or pair of
// elements.
//
// The zero value renders everything flush together; start from
// [DefaultDelimiters] (or [Render], which does so for you) and override the
// fields you care about.
type Delimiters struct {
	// Top separates elements of the top-level collection (except pairs).
	// Example for a tuple of (1, "Two", 3): 1, Two, 3
	Top string `yaml:"top"`

	// SubPrefix, SubDelim, and SubSuffix wrap and separate a collection
	// rendered inside another collection (except pairs).
	// Example for a sequence of tuples: (1, Two, 3), (4, Five, 6)
	SubPrefix string `yaml:"sub_prefix"`
	SubDelim  string `yaml:"sub_delim"`
	SubSuffix string `yaml:"sub_suffix"`

	// PairPrefix, PairDelim, and PairSuffix wrap and separate a pair.
	// PairDelim applies at every level; the prefix and suffix apply only
	// when the pair is nested inside another collection.
	// Top-level example for a pair of (1, "One"): 1: One
	// Nested example for a map: [1: One], [2: Two], [3: Three]
	PairPrefix string `yaml:"pair_prefix"`
	PairDelim  string `yaml:"pair_delim"`
	PairSuffix string `yaml:"pair_suffix"`

	// TopAsSub renders the top-level collection exactly as if it were
	// nested: wrapped in SubPrefix/SubSuffix (PairPrefix/PairSuffix for a
	// pair) and separated by SubDelim. It has no effect on text or
	// fallback values.
	TopAsSub bool `yaml:"top_as_sub"`

	// Empty is emitted in place of an empty collection or empty text.
	Empty string `yaml:"empty"`
}

// defaults is the canonical default delimiter set. The literals pass through
// asciiLit so an out-of-range character fails at package init, long before
// any rendering happens.
var defaults = Delimiters{
	Top:        asciiLit(", "),
	SubPrefix:  asciiLit("("),
	SubDelim:   asciiLit(", "),
	SubSuffix:  asciiLit(")"),
	PairPrefix: asciiLit("["),
	PairDelim:  asciiLit(": "),
	PairSuffix: asciiLit("]"),
	TopAsSub:   false,
	Empty:      asciiLit("<empty>"),
}

// DefaultDelimiters returns the default delimiter set:
//
//	Top:        ", "
//	SubPrefix:  "("
//	SubDelim:   ", "
//	SubSuffix:  ")"
//	PairPrefix: "["
//	PairDelim:  ": "
//	PairSuffix: "]"
//	TopAsSub:   false
//	Empty:      "<empty>"
func DefaultDelimiters() Delimiters { return defaults }

// ParseDelimiters unmarshals a YAML document into a Delimiters value layered
// over the defaults: fields absent from the document keep their default.
// Field names match the yaml tags on [Delimiters]:
//
//	top: " | "
//	pair_delim: " -> "
//	empty: none
//
// Errors wrap [ErrInvalidDelimiters].
func ParseDelimiters(data []byte) (Delimiters, error) {
	d := DefaultDelimiters()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Delimiters{}, fmt.Errorf("%w: %v", ErrInvalidDelimiters, err)
	}
	return d, nil
}
