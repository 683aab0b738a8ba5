package store

import (
	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

// EncodedTermSize is the size of an encoded term: a type byte followed by a
// 128-bit hash of the term payload.
const EncodedTermSize = 17

// EncodedTerm represents a term encoded as a type byte followed by 16 bytes of
// hash. It is the key of the term's payload in TableID2Str.
type EncodedTerm [EncodedTermSize]byte

// Type returns the term type stored in the first byte.
func (e EncodedTerm) Type() rdf.TermType {
	return rdf.TermType(e[0])
}

// Payload is the data needed to rebuild an encoded term.
type Payload struct {
	Key  EncodedTerm
	Data []byte
}

// EncodedQuadSize is the size of an encoded quad: subject, predicate, object
// and graph in that order.
const EncodedQuadSize = 4 * EncodedTermSize

// PayloadLookup resolves an encoded term to its stored payload. It returns
// ErrNotFound when the payload is missing.
type PayloadLookup func(key EncodedTerm) ([]byte, error)

// TermEncoder handles encoding of RDF terms into a compact binary format
type TermEncoder interface {
	// EncodeTerm encodes an RDF term into a fixed-size byte array.
	// Returns the encoded term and the payloads to store in the id2str table,
	// including those of quoted quads.
	EncodeTerm(term rdf.Term) (EncodedTerm, []Payload, error)

	// EncodeQuad encodes the four positions of a quad into an
	// EncodedQuadSize byte value.
	EncodeQuad(quad *rdf.Quad) ([]byte, []Payload, error)
}

// TermDecoder handles decoding of RDF terms from binary format
type TermDecoder interface {
	// DecodeTerm decodes an encoded term back to an rdf.Term, resolving
	// payloads through lookup.
	DecodeTerm(encoded EncodedTerm, lookup PayloadLookup) (rdf.Term, error)

	// DecodeQuad is the inverse of TermEncoder.EncodeQuad.
	DecodeQuad(value []byte, lookup PayloadLookup) (*rdf.Quad, error)
}
