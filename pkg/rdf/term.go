package rdf

import (
	"fmt"
	"strings"
)

// TermType represents the type of an RDF term
type TermType byte

const (
	TermTypeNamedNode TermType = iota + 1
	TermTypeBlankNode
	TermTypeLiteral
	TermTypeDefaultGraph
	TermTypeQuad
)

func (t TermType) String() string {
	switch t {
	case TermTypeNamedNode:
		return "NamedNode"
	case TermTypeBlankNode:
		return "BlankNode"
	case TermTypeLiteral:
		return "Literal"
	case TermTypeDefaultGraph:
		return "DefaultGraph"
	case TermTypeQuad:
		return "Quad"
	default:
		return fmt.Sprintf("TermType(%d)", byte(t))
	}
}

// Term represents an RDF term: a named node, blank node, literal, the default
// graph or a quoted quad.
type Term interface {
	Type() TermType
	// Value returns the canonical string payload of the term.
	Value() string
	String() string
	// Equals reports structural equality. Terms of different variants are
	// never equal.
	Equals(other Term) bool
}

// NamedNode represents an IRI
type NamedNode struct {
	IRI string
}

func NewNamedNode(iri string) *NamedNode {
	return &NamedNode{IRI: iri}
}

func (n *NamedNode) Type() TermType {
	return TermTypeNamedNode
}

func (n *NamedNode) Value() string {
	return n.IRI
}

func (n *NamedNode) String() string {
	return "<" + n.IRI + ">"
}

func (n *NamedNode) Equals(other Term) bool {
	if on, ok := other.(*NamedNode); ok && on != nil {
		return n.IRI == on.IRI
	}
	return false
}

// BlankNode represents a blank node. ID always carries the "_:" prefix.
type BlankNode struct {
	ID string
}

// NewBlankNode creates a blank node with the given local identifier, adding
// the "_:" prefix when missing. An empty id mints a fresh identifier from
// DefaultBlankNodes.
func NewBlankNode(id string) *BlankNode {
	if id == "" {
		return DefaultBlankNodes.Next()
	}
	if !strings.HasPrefix(id, BlankNodePrefix) {
		id = BlankNodePrefix + id
	}
	return &BlankNode{ID: id}
}

func (b *BlankNode) Type() TermType {
	return TermTypeBlankNode
}

func (b *BlankNode) Value() string {
	return b.ID
}

func (b *BlankNode) String() string {
	return b.ID
}

func (b *BlankNode) Equals(other Term) bool {
	if ob, ok := other.(*BlankNode); ok && ob != nil {
		return b.ID == ob.ID
	}
	return false
}

// DefaultGraph represents the default graph
type DefaultGraph struct{}

func NewDefaultGraph() *DefaultGraph {
	return &DefaultGraph{}
}

func (d *DefaultGraph) Type() TermType {
	return TermTypeDefaultGraph
}

func (d *DefaultGraph) Value() string {
	return ""
}

func (d *DefaultGraph) String() string {
	return "DEFAULT"
}

func (d *DefaultGraph) Equals(other Term) bool {
	od, ok := other.(*DefaultGraph)
	return ok && od != nil
}

// isNilTerm catches both untyped nils and typed nil pointers wrapped in the
// Term interface.
func isNilTerm(t Term) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *NamedNode:
		return v == nil
	case *BlankNode:
		return v == nil
	case *Literal:
		return v == nil
	case *DefaultGraph:
		return v == nil
	case *Quad:
		return v == nil
	}
	return false
}

func isDefaultGraph(t Term) bool {
	return !isNilTerm(t) && t.Type() == TermTypeDefaultGraph
}

// termsEqual compares two optional terms: both unset, or both set and equal.
func termsEqual(a, b Term) bool {
	aNil, bNil := isNilTerm(a), isNilTerm(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return a.Equals(b)
}
