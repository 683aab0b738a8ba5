package encoding

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/zeebo/xxh3"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
	"github.com/aleksaelezovic/simplerdf/pkg/store"
)

// TermEncoder encodes terms as a type byte plus the 128-bit xxh3 hash of the
// term payload. Payloads are kept verbatim so decoding is lossless:
//
//	NamedNode     IRI
//	BlankNode     identifier, "_:" included
//	Literal       uvarint-prefixed lexical form, language and datatype IRI
//	Quad          four encoded terms
//	DefaultGraph  none, the hash bytes are zero
type TermEncoder struct{}

func NewTermEncoder() *TermEncoder {
	return &TermEncoder{}
}

// Hash128 computes a 128-bit xxhash3 hash of the input
func (e *TermEncoder) Hash128(data []byte) [16]byte {
	hash := xxh3.Hash128(data)
	var result [16]byte
	binary.BigEndian.PutUint64(result[0:8], hash.Hi)
	binary.BigEndian.PutUint64(result[8:16], hash.Lo)
	return result
}

// EncodeTerm encodes an RDF term into a fixed-size byte array.
// Returns the encoded term and the payloads to store in the id2str table.
func (e *TermEncoder) EncodeTerm(term rdf.Term) (store.EncodedTerm, []store.Payload, error) {
	switch t := term.(type) {
	case *rdf.NamedNode:
		return e.withPayload(rdf.TermTypeNamedNode, []byte(t.IRI))
	case *rdf.BlankNode:
		return e.withPayload(rdf.TermTypeBlankNode, []byte(t.ID))
	case *rdf.Literal:
		return e.withPayload(rdf.TermTypeLiteral, literalPayload(t))
	case *rdf.DefaultGraph:
		var encoded store.EncodedTerm
		encoded[0] = byte(rdf.TermTypeDefaultGraph)
		return encoded, nil, nil
	case *rdf.Quad:
		return e.encodeQuotedQuad(t)
	default:
		return store.EncodedTerm{}, nil, errors.Newf("unknown term type: %T", term)
	}
}

func (e *TermEncoder) withPayload(termType rdf.TermType, data []byte) (store.EncodedTerm, []store.Payload, error) {
	encoded := e.key(termType, data)
	return encoded, []store.Payload{{Key: encoded, Data: data}}, nil
}

func (e *TermEncoder) key(termType rdf.TermType, data []byte) store.EncodedTerm {
	var encoded store.EncodedTerm
	encoded[0] = byte(termType)
	hash := e.Hash128(data)
	copy(encoded[1:], hash[:])
	return encoded
}

func literalPayload(lit *rdf.Literal) []byte {
	datatype := lit.DatatypeIRI()
	buf := make([]byte, 0, len(lit.Lexical)+len(lit.Language)+len(datatype)+3*binary.MaxVarintLen16)
	buf = appendField(buf, lit.Lexical)
	buf = appendField(buf, lit.Language)
	buf = appendField(buf, datatype)
	return buf
}

func appendField(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func (e *TermEncoder) encodeQuotedQuad(q *rdf.Quad) (store.EncodedTerm, []store.Payload, error) {
	data, payloads, err := e.EncodeQuad(q)
	if err != nil {
		return store.EncodedTerm{}, nil, errors.Wrap(err, "quoted quad")
	}
	encoded := e.key(rdf.TermTypeQuad, data)
	return encoded, append(payloads, store.Payload{Key: encoded, Data: data}), nil
}

// EncodeQuad encodes subject, predicate, object and graph back to back.
func (e *TermEncoder) EncodeQuad(quad *rdf.Quad) ([]byte, []store.Payload, error) {
	if quad == nil {
		return nil, nil, errors.Wrap(rdf.ErrNilTerm, "quad")
	}
	positions := [4]struct {
		name string
		term rdf.Term
	}{
		{"subject", quad.Subject()},
		{"predicate", quad.Predicate()},
		{"object", quad.Object()},
		{"graph", quad.Graph()},
	}

	result := make([]byte, 0, store.EncodedQuadSize)
	var payloads []store.Payload
	for _, pos := range positions {
		enc, p, err := e.EncodeTerm(pos.term)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to encode %s", pos.name)
		}
		result = append(result, enc[:]...)
		payloads = append(payloads, p...)
	}
	return result, payloads, nil
}

// GetTermType extracts the type from an encoded term
func GetTermType(encoded store.EncodedTerm) rdf.TermType {
	return encoded.Type()
}
