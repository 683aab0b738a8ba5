package rdf

import (
	"github.com/cockroachdb/errors"
)

// Quad represents an RDF quad (subject, predicate, object, graph). Quads are
// immutable; the With* methods return modified copies. A quad is itself a
// Term so it can be quoted as the subject or object of another quad.
type Quad struct {
	subject   Term
	predicate *NamedNode
	object    Term
	graph     Term
}

// NewQuad creates a quad. A nil graph means the default graph. The subject
// can't be a literal and the graph must be a named node, blank node or the
// default graph.
func NewQuad(subject Term, predicate *NamedNode, object, graph Term) (*Quad, error) {
	if isNilTerm(subject) {
		return nil, errors.Wrap(ErrNilTerm, "subject")
	}
	if subject.Type() == TermTypeLiteral {
		return nil, errors.Wrapf(ErrLiteralSubject, "subject %s", subject)
	}
	if predicate == nil {
		return nil, errors.Wrap(ErrNilTerm, "predicate")
	}
	if isNilTerm(object) {
		return nil, errors.Wrap(ErrNilTerm, "object")
	}
	if isNilTerm(graph) {
		graph = NewDefaultGraph()
	}
	if err := validateGraph(graph); err != nil {
		return nil, err
	}
	return &Quad{
		subject:   subject,
		predicate: predicate,
		object:    object,
		graph:     graph,
	}, nil
}

// NewTriple creates a quad in the default graph.
func NewTriple(subject Term, predicate *NamedNode, object Term) (*Quad, error) {
	return NewQuad(subject, predicate, object, nil)
}

// MustQuad is like NewQuad but panics on invalid input. Intended for
// statically known data.
func MustQuad(subject Term, predicate *NamedNode, object, graph Term) *Quad {
	q, err := NewQuad(subject, predicate, object, graph)
	if err != nil {
		panic(err)
	}
	return q
}

func validateGraph(graph Term) error {
	switch graph.Type() {
	case TermTypeNamedNode, TermTypeBlankNode, TermTypeDefaultGraph:
		return nil
	}
	return errors.Wrapf(ErrInvalidGraph, "got %s", graph.Type())
}

func (q *Quad) Subject() Term {
	return q.subject
}

func (q *Quad) Predicate() *NamedNode {
	return q.predicate
}

func (q *Quad) Object() Term {
	return q.object
}

func (q *Quad) Graph() Term {
	return q.graph
}

func (q *Quad) Type() TermType {
	return TermTypeQuad
}

// Value returns the debug string form; quads have no scalar payload.
func (q *Quad) Value() string {
	return q.String()
}

// String renders "<subject> <predicate> <object> <graph>", omitting the graph
// when it is the default graph and wrapping quoted quads in << >>.
func (q *Quad) String() string {
	result := quotedString(q.subject) + " " + q.predicate.String() + " " + quotedString(q.object)
	if q.graph.Type() != TermTypeDefaultGraph {
		result += " " + q.graph.String()
	}
	return result
}

func quotedString(t Term) string {
	if t.Type() == TermTypeQuad {
		return "<< " + t.String() + " >>"
	}
	return t.String()
}

// Equals reports structural equality of all four positions, recursing into
// quoted quads.
func (q *Quad) Equals(other Term) bool {
	oq, ok := other.(*Quad)
	if !ok || oq == nil {
		return false
	}
	if q == oq {
		return true
	}
	return q.subject.Equals(oq.subject) &&
		q.predicate.Equals(oq.predicate) &&
		q.object.Equals(oq.object) &&
		q.graph.Equals(oq.graph)
}

func (q *Quad) WithSubject(subject Term) (*Quad, error) {
	return NewQuad(subject, q.predicate, q.object, q.graph)
}

// WithPredicate returns a copy with a new predicate. A nil predicate leaves
// the quad unchanged, as does a nil object for WithObject.
func (q *Quad) WithPredicate(predicate *NamedNode) *Quad {
	if predicate == nil {
		return q
	}
	c := *q
	c.predicate = predicate
	return &c
}

func (q *Quad) WithObject(object Term) *Quad {
	if isNilTerm(object) {
		return q
	}
	c := *q
	c.object = object
	return &c
}

// WithGraph returns a copy in the given graph; nil means the default graph.
func (q *Quad) WithGraph(graph Term) (*Quad, error) {
	return NewQuad(q.subject, q.predicate, q.object, graph)
}
