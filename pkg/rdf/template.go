package rdf

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// QuadTemplate is a quad pattern. A nil position is a wildcard. Templates are
// only used for matching and are never stored in a dataset.
type QuadTemplate struct {
	subject   Term
	predicate *NamedNode
	object    Term
	graph     Term
}

// NewQuadTemplate creates a template. At least one position must be set and
// the subject can't be a literal. A default graph is normalized to a wildcard.
func NewQuadTemplate(subject Term, predicate *NamedNode, object, graph Term) (*QuadTemplate, error) {
	if isNilTerm(subject) {
		subject = nil
	}
	if isNilTerm(object) {
		object = nil
	}
	if isNilTerm(graph) || isDefaultGraph(graph) {
		graph = nil
	}
	if subject == nil && predicate == nil && object == nil && graph == nil {
		return nil, ErrEmptyTemplate
	}
	if subject != nil && subject.Type() == TermTypeLiteral {
		return nil, errors.Wrapf(ErrLiteralSubject, "subject %s", subject)
	}
	if graph != nil {
		if err := validateGraph(graph); err != nil {
			return nil, err
		}
	}
	return &QuadTemplate{
		subject:   subject,
		predicate: predicate,
		object:    object,
		graph:     graph,
	}, nil
}

// MustQuadTemplate is like NewQuadTemplate but panics on invalid input.
func MustQuadTemplate(subject Term, predicate *NamedNode, object, graph Term) *QuadTemplate {
	t, err := NewQuadTemplate(subject, predicate, object, graph)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *QuadTemplate) Subject() Term {
	return t.subject
}

// Predicate returns the predicate pattern or nil for a wildcard.
func (t *QuadTemplate) Predicate() *NamedNode {
	return t.predicate
}

func (t *QuadTemplate) Object() Term {
	return t.object
}

func (t *QuadTemplate) Graph() Term {
	return t.graph
}

// Matches reports whether every set position equals the corresponding
// position of q.
func (t *QuadTemplate) Matches(q *Quad) bool {
	if q == nil {
		return false
	}
	return (t.subject == nil || t.subject.Equals(q.subject)) &&
		(t.predicate == nil || t.predicate.Equals(q.predicate)) &&
		(t.object == nil || t.object.Equals(q.object)) &&
		(t.graph == nil || t.graph.Equals(q.graph))
}

// Equals compares two patterns: each position must be unset in both or set
// and equal in both.
func (t *QuadTemplate) Equals(other *QuadTemplate) bool {
	if other == nil {
		return false
	}
	var tp, op Term
	if t.predicate != nil {
		tp = t.predicate
	}
	if other.predicate != nil {
		op = other.predicate
	}
	return termsEqual(t.subject, other.subject) &&
		termsEqual(tp, op) &&
		termsEqual(t.object, other.object) &&
		termsEqual(t.graph, other.graph)
}

// String renders the pattern with ?s ?p ?o in place of wildcards. An unset
// graph is omitted.
func (t *QuadTemplate) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, patternString(t.subject, "?s"))
	if t.predicate != nil {
		parts = append(parts, t.predicate.String())
	} else {
		parts = append(parts, "?p")
	}
	parts = append(parts, patternString(t.object, "?o"))
	if t.graph != nil {
		parts = append(parts, t.graph.String())
	}
	return strings.Join(parts, " ")
}

func patternString(term Term, wildcard string) string {
	if term == nil {
		return wildcard
	}
	return quotedString(term)
}

func (t *QuadTemplate) WithSubject(subject Term) (*QuadTemplate, error) {
	return NewQuadTemplate(subject, t.predicate, t.object, t.graph)
}

func (t *QuadTemplate) WithPredicate(predicate *NamedNode) (*QuadTemplate, error) {
	return NewQuadTemplate(t.subject, predicate, t.object, t.graph)
}

func (t *QuadTemplate) WithObject(object Term) (*QuadTemplate, error) {
	return NewQuadTemplate(t.subject, t.predicate, object, t.graph)
}

func (t *QuadTemplate) WithGraph(graph Term) (*QuadTemplate, error) {
	return NewQuadTemplate(t.subject, t.predicate, t.object, graph)
}
