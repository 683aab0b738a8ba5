package dataset

import (
	"iter"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

// QuadSource is any collection of quads, e.g. another Dataset or a QuadSlice.
type QuadSource interface {
	All() iter.Seq[*rdf.Quad]
}

// QuadSlice adapts a plain slice to QuadSource.
type QuadSlice []*rdf.Quad

func (s QuadSlice) All() iter.Seq[*rdf.Quad] {
	return func(yield func(*rdf.Quad) bool) {
		for _, q := range s {
			if !yield(q) {
				return
			}
		}
	}
}

// Predicate is a caller supplied filter function. It receives the candidate
// quad and the dataset being filtered.
type Predicate func(q *rdf.Quad, d *Dataset) bool

type matcherKind uint8

const (
	kindUnset matcherKind = iota
	kindQuad
	kindTemplate
	kindFunc
	kindSource
)

// Matcher selects quads of a Dataset. It is built from exactly one of a quad,
// a template, a predicate function or a collection of quads. The zero value
// is the absent filter: operations that select matches treat it as "match
// everything", the *Except operations as "match nothing".
type Matcher struct {
	kind     matcherKind
	quad     *rdf.Quad
	template *rdf.QuadTemplate
	fn       Predicate
	source   QuadSource
}

// NoFilter is the absent filter.
var NoFilter = Matcher{}

// MatchQuad selects quads structurally equal to q. It panics if q is nil.
func MatchQuad(q *rdf.Quad) Matcher {
	if q == nil {
		panic("dataset: MatchQuad called with a nil quad")
	}
	return Matcher{kind: kindQuad, quad: q}
}

// MatchTemplate selects quads matching t. It panics if t is nil.
func MatchTemplate(t *rdf.QuadTemplate) Matcher {
	if t == nil {
		panic("dataset: MatchTemplate called with a nil template")
	}
	return Matcher{kind: kindTemplate, template: t}
}

// MatchFunc selects quads for which fn returns true. It panics if fn is nil.
func MatchFunc(fn Predicate) Matcher {
	if fn == nil {
		panic("dataset: MatchFunc called with a nil function")
	}
	return Matcher{kind: kindFunc, fn: fn}
}

// MatchIn selects quads structurally equal to any quad of src. It panics if
// src is nil.
func MatchIn(src QuadSource) Matcher {
	if src == nil {
		panic("dataset: MatchIn called with a nil source")
	}
	if d, ok := src.(*Dataset); ok && d == nil {
		panic("dataset: MatchIn called with a nil dataset")
	}
	return Matcher{kind: kindSource, source: src}
}

// IsSet reports whether m is anything but the absent filter.
func (m Matcher) IsSet() bool {
	return m.kind != kindUnset
}

// matches evaluates m against q. unset is returned for the absent filter.
func (m Matcher) matches(q *rdf.Quad, d *Dataset, unset bool) bool {
	switch m.kind {
	case kindQuad:
		return m.quad.Equals(q)
	case kindTemplate:
		return m.template.Matches(q)
	case kindFunc:
		return m.fn(q, d)
	case kindSource:
		for other := range m.source.All() {
			if other != nil && other.Equals(q) {
				return true
			}
		}
		return false
	default:
		return unset
	}
}
