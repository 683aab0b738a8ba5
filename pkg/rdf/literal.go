package rdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// Helper functions for common XSD datatypes
var (
	XSDString   = NewNamedNode("http://www.w3.org/2001/XMLSchema#string")
	XSDInteger  = NewNamedNode("http://www.w3.org/2001/XMLSchema#integer")
	XSDDecimal  = NewNamedNode("http://www.w3.org/2001/XMLSchema#decimal")
	XSDDouble   = NewNamedNode("http://www.w3.org/2001/XMLSchema#double")
	XSDBoolean  = NewNamedNode("http://www.w3.org/2001/XMLSchema#boolean")
	XSDDateTime = NewNamedNode("http://www.w3.org/2001/XMLSchema#dateTime")

	RDFLangString = NewNamedNode("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")
)

// Literal represents an RDF literal. Datatype is never nil on literals built
// by the constructors in this package; a nil Datatype is read as xsd:string.
type Literal struct {
	Lexical  string
	Language string
	Datatype *NamedNode
}

// NewLiteral creates a literal from a native Go value, inferring the datatype:
// integers map to xsd:integer, floats to xsd:decimal, booleans to xsd:boolean
// with lexical form "1"/"0", everything else to xsd:string.
func NewLiteral(value any) *Literal {
	lexical, datatype := inferLexical(value)
	return &Literal{Lexical: lexical, Datatype: datatype}
}

// NewLiteralWithLanguage creates a language-tagged string. An empty language
// yields a plain xsd:string literal.
func NewLiteralWithLanguage(value, language string) *Literal {
	if language == "" {
		return &Literal{Lexical: value, Datatype: XSDString}
	}
	return &Literal{Lexical: value, Language: language, Datatype: RDFLangString}
}

// NewLiteralWithDatatype creates a typed literal. The datatype is used
// verbatim; nil means xsd:string.
func NewLiteralWithDatatype(value string, datatype *NamedNode) *Literal {
	if datatype == nil {
		datatype = XSDString
	}
	return &Literal{Lexical: value, Datatype: datatype}
}

func NewIntegerLiteral(value int64) *Literal {
	return NewLiteralWithDatatype(strconv.FormatInt(value, 10), XSDInteger)
}

func NewDecimalLiteral(value float64) *Literal {
	return NewLiteralWithDatatype(strconv.FormatFloat(value, 'f', -1, 64), XSDDecimal)
}

func NewBooleanLiteral(value bool) *Literal {
	return NewLiteral(value)
}

func NewDateTimeLiteral(value time.Time) *Literal {
	return NewLiteralWithDatatype(value.Format(time.RFC3339), XSDDateTime)
}

func inferLexical(value any) (string, *NamedNode) {
	switch v := value.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int8:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int16:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int32:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int64:
		return strconv.FormatInt(v, 10), XSDInteger
	case uint:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint8:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint16:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint32:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint64:
		return strconv.FormatUint(v, 10), XSDInteger
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), XSDDecimal
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), XSDDecimal
	case bool:
		if v {
			return "1", XSDBoolean
		}
		return "0", XSDBoolean
	case string:
		return v, XSDString
	case fmt.Stringer:
		return v.String(), XSDString
	default:
		return fmt.Sprint(v), XSDString
	}
}

func (l *Literal) Type() TermType {
	return TermTypeLiteral
}

// Value returns the lexical form.
func (l *Literal) Value() string {
	return l.Lexical
}

// DatatypeIRI returns the datatype IRI, defaulting to xsd:string.
func (l *Literal) DatatypeIRI() string {
	if l.Datatype == nil {
		return XSDString.IRI
	}
	return l.Datatype.IRI
}

func (l *Literal) String() string {
	result := `"` + l.Lexical + `"`
	if l.Language != "" {
		result += "@" + l.Language
	} else if dt := l.DatatypeIRI(); dt != XSDString.IRI {
		result += "^^<" + dt + ">"
	}
	return result
}

func (l *Literal) Equals(other Term) bool {
	ol, ok := other.(*Literal)
	if !ok || ol == nil {
		return false
	}
	return l.Lexical == ol.Lexical &&
		l.Language == ol.Language &&
		l.DatatypeIRI() == ol.DatatypeIRI()
}

// WithValue returns a copy holding a new value. String values keep the
// language and datatype; native values have their datatype re-inferred.
func (l *Literal) WithValue(value any) *Literal {
	switch v := value.(type) {
	case string:
		return &Literal{Lexical: v, Language: l.Language, Datatype: l.Datatype}
	case fmt.Stringer:
		return &Literal{Lexical: v.String(), Language: l.Language, Datatype: l.Datatype}
	}
	return NewLiteral(value)
}

// WithLang returns a copy with a new language tag. Adding a tag to an untagged
// literal switches the datatype to rdf:langString, removing it switches back
// to xsd:string.
func (l *Literal) WithLang(language string) *Literal {
	hadLang, hasLang := l.Language != "", language != ""
	datatype := l.Datatype
	if hadLang != hasLang {
		if hasLang {
			datatype = RDFLangString
		} else {
			datatype = XSDString
		}
	}
	return &Literal{Lexical: l.Lexical, Language: language, Datatype: datatype}
}

// WithDatatype returns an untagged copy with the given datatype.
func (l *Literal) WithDatatype(datatype *NamedNode) (*Literal, error) {
	if datatype == nil || datatype.IRI == "" {
		return nil, errors.Wrap(ErrInvalidDatatype, "datatype can't be empty")
	}
	if datatype.IRI == RDFLangString.IRI {
		return nil, errors.Wrap(ErrInvalidDatatype, "datatype can't be rdf:langString")
	}
	return &Literal{Lexical: l.Lexical, Datatype: datatype}, nil
}
