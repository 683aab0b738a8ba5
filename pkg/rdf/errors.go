package rdf

import (
	"github.com/cockroachdb/errors"
)

// Construction errors. They signal a programming error by the caller and are
// never transient.
var (
	ErrNilTerm         = errors.New("rdf: term can't be nil")
	ErrLiteralSubject  = errors.New("rdf: subject can't be a literal")
	ErrInvalidGraph    = errors.New("rdf: graph must be a named node, blank node or the default graph")
	ErrEmptyTemplate   = errors.New("rdf: at least one part of the quad template has to be specified")
	ErrInvalidDatatype = errors.New("rdf: invalid literal datatype")
)

// Namespace errors.
var (
	ErrUnknownPrefix    = errors.New("rdf: unknown prefix")
	ErrNotPrefixedName  = errors.New("rdf: not a prefixed name")
	ErrNoMatchingPrefix = errors.New("rdf: IRI doesn't match any registered prefix")
)
