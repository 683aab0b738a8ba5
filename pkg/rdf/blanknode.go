package rdf

import (
	"strconv"

	"github.com/google/uuid"
)

// BlankNodePrefix starts every blank node identifier.
const BlankNodePrefix = "_:"

// BlankNodeGenerator mints blank node identifiers. The sequential generator
// produces _:genid0, _:genid1, ... and can be reset or seeded for
// deterministic output. It is not safe for concurrent use.
type BlankNodeGenerator struct {
	next  uint64
	start uint64
	mint  func(n uint64) string
}

// NewBlankNodeGenerator creates a sequential generator starting at zero.
func NewBlankNodeGenerator() *BlankNodeGenerator {
	return &BlankNodeGenerator{mint: sequentialID}
}

// NewSeededBlankNodeGenerator creates a sequential generator starting at seed.
func NewSeededBlankNodeGenerator(seed uint64) *BlankNodeGenerator {
	return &BlankNodeGenerator{next: seed, start: seed, mint: sequentialID}
}

// NewUUIDBlankNodeGenerator creates a generator of random UUID based
// identifiers, useful when blank nodes minted by independent generators end
// up in the same dataset.
func NewUUIDBlankNodeGenerator() *BlankNodeGenerator {
	return &BlankNodeGenerator{mint: func(uint64) string {
		return BlankNodePrefix + "b" + uuid.NewString()
	}}
}

func sequentialID(n uint64) string {
	return BlankNodePrefix + "genid" + strconv.FormatUint(n, 10)
}

// Next returns a blank node with a fresh identifier.
func (g *BlankNodeGenerator) Next() *BlankNode {
	id := g.mint(g.next)
	g.next++
	return &BlankNode{ID: id}
}

// Reset rewinds the counter to its starting value.
func (g *BlankNodeGenerator) Reset() {
	g.next = g.start
}

// DefaultBlankNodes backs NewBlankNode("") and the zero DataFactory.
var DefaultBlankNodes = NewBlankNodeGenerator()
