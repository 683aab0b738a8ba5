package rdf

import (
	"strings"
)

// DataFactory builds terms, quads and templates. It owns the blank node
// generator used for anonymous blank nodes, so independent factories mint
// independent sequences.
type DataFactory struct {
	blankNodes *BlankNodeGenerator
}

// NewDataFactory creates a factory with its own sequential blank node
// generator.
func NewDataFactory() *DataFactory {
	return &DataFactory{blankNodes: NewBlankNodeGenerator()}
}

// NewDataFactoryWithGenerator creates a factory minting blank nodes from g.
func NewDataFactoryWithGenerator(g *BlankNodeGenerator) *DataFactory {
	return &DataFactory{blankNodes: g}
}

func (f *DataFactory) generator() *BlankNodeGenerator {
	if f.blankNodes == nil {
		return DefaultBlankNodes
	}
	return f.blankNodes
}

// Reset rewinds the factory's blank node generator.
func (f *DataFactory) Reset() {
	f.generator().Reset()
}

func (f *DataFactory) NamedNode(iri string) *NamedNode {
	return NewNamedNode(iri)
}

// BlankNode returns a blank node with the given id, or a freshly minted one
// when id is empty.
func (f *DataFactory) BlankNode(id string) *BlankNode {
	if id == "" {
		return f.generator().Next()
	}
	return NewBlankNode(id)
}

// Literal builds a literal. A non-empty language forces rdf:langString;
// otherwise a non-empty datatype is used verbatim and an empty one is
// inferred from the native type of value.
func (f *DataFactory) Literal(value any, language, datatype string) *Literal {
	switch {
	case language != "":
		lexical, _ := inferLexical(value)
		return NewLiteralWithLanguage(lexical, language)
	case strings.TrimSpace(datatype) != "":
		lexical, _ := inferLexical(value)
		return NewLiteralWithDatatype(lexical, NewNamedNode(datatype))
	default:
		return NewLiteral(value)
	}
}

func (f *DataFactory) DefaultGraph() *DefaultGraph {
	return NewDefaultGraph()
}

func (f *DataFactory) Quad(subject Term, predicate *NamedNode, object, graph Term) (*Quad, error) {
	return NewQuad(subject, predicate, object, graph)
}

func (f *DataFactory) QuadTemplate(subject Term, predicate *NamedNode, object, graph Term) (*QuadTemplate, error) {
	return NewQuadTemplate(subject, predicate, object, graph)
}
