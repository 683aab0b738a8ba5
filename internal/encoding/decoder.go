package encoding

import (
	"bytes"
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
	"github.com/aleksaelezovic/simplerdf/pkg/store"
)

// TermDecoder handles decoding of RDF terms. Every payload is checked against
// the hash in its key; a mismatch is reported as store.ErrCorruptSnapshot.
type TermDecoder struct {
	hasher *TermEncoder
}

// NewTermDecoder creates a new term decoder
func NewTermDecoder() *TermDecoder {
	return &TermDecoder{hasher: NewTermEncoder()}
}

// DecodeTerm decodes an encoded term back to an rdf.Term
func (d *TermDecoder) DecodeTerm(encoded store.EncodedTerm, lookup store.PayloadLookup) (rdf.Term, error) {
	termType := GetTermType(encoded)
	if termType == rdf.TermTypeDefaultGraph {
		return rdf.NewDefaultGraph(), nil
	}

	data, err := lookup(encoded)
	if err != nil {
		return nil, errors.Wrapf(err, "payload of %s term", termType)
	}
	if d.hasher.key(termType, data) != encoded {
		return nil, errors.Wrapf(store.ErrCorruptSnapshot, "payload hash mismatch for %s term", termType)
	}

	switch termType {
	case rdf.TermTypeNamedNode:
		return rdf.NewNamedNode(string(data)), nil

	case rdf.TermTypeBlankNode:
		return rdf.NewBlankNode(string(data)), nil

	case rdf.TermTypeLiteral:
		return decodeLiteral(data)

	case rdf.TermTypeQuad:
		q, err := d.DecodeQuad(data, lookup)
		if err != nil {
			return nil, errors.Wrap(err, "quoted quad")
		}
		return q, nil

	default:
		return nil, errors.Wrapf(store.ErrCorruptSnapshot, "unknown term type: %d", byte(termType))
	}
}

func decodeLiteral(data []byte) (*rdf.Literal, error) {
	r := bytes.NewReader(data)
	var fields [3]string
	for i := range fields {
		n, err := binary.ReadUvarint(r)
		if err != nil || n > uint64(r.Len()) {
			return nil, errors.Wrap(store.ErrCorruptSnapshot, "truncated literal payload")
		}
		buf := make([]byte, n)
		_, _ = r.Read(buf)
		fields[i] = string(buf)
	}
	if r.Len() != 0 {
		return nil, errors.Wrap(store.ErrCorruptSnapshot, "trailing bytes in literal payload")
	}
	return &rdf.Literal{
		Lexical:  fields[0],
		Language: fields[1],
		Datatype: rdf.NewNamedNode(fields[2]),
	}, nil
}

// DecodeQuad decodes a value produced by TermEncoder.EncodeQuad.
func (d *TermDecoder) DecodeQuad(value []byte, lookup store.PayloadLookup) (*rdf.Quad, error) {
	if len(value) != store.EncodedQuadSize {
		return nil, errors.Wrapf(store.ErrCorruptSnapshot, "encoded quad has %d bytes", len(value))
	}

	var terms [4]rdf.Term
	for i := range terms {
		var enc store.EncodedTerm
		copy(enc[:], value[i*store.EncodedTermSize:(i+1)*store.EncodedTermSize])
		term, err := d.DecodeTerm(enc, lookup)
		if err != nil {
			return nil, err
		}
		terms[i] = term
	}

	predicate, ok := terms[1].(*rdf.NamedNode)
	if !ok {
		return nil, errors.Wrapf(store.ErrCorruptSnapshot, "predicate is a %s", terms[1].Type())
	}
	q, err := rdf.NewQuad(terms[0], predicate, terms[2], terms[3])
	if err != nil {
		return nil, errors.Wrapf(store.ErrCorruptSnapshot, "invalid quad: %v", err)
	}
	return q, nil
}
