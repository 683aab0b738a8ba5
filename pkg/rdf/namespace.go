package rdf

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Namespaces maps short names to IRI prefixes. Names added without an explicit
// short name are generated as n0, n1, ...
type Namespaces struct {
	n        int
	prefixes map[string]string
}

func NewNamespaces() *Namespaces {
	return &Namespaces{prefixes: make(map[string]string)}
}

// Add registers iriPrefix under shortName, generating a name when shortName
// is empty. It returns the name used. An existing mapping for shortName is
// replaced.
func (ns *Namespaces) Add(iriPrefix, shortName string) string {
	if shortName == "" {
		shortName = ns.generateName()
	}
	ns.prefixes[shortName] = iriPrefix
	return shortName
}

func (ns *Namespaces) generateName() string {
	for {
		name := "n" + strconv.Itoa(ns.n)
		ns.n++
		if _, taken := ns.prefixes[name]; !taken {
			return name
		}
	}
}

func (ns *Namespaces) Remove(shortName string) {
	delete(ns.prefixes, shortName)
}

// Get returns the IRI prefix registered under shortName.
func (ns *Namespaces) Get(shortName string) (string, error) {
	if iri, ok := ns.prefixes[shortName]; ok {
		return iri, nil
	}
	return "", errors.Wrapf(ErrUnknownPrefix, "%q", shortName)
}

// All returns a copy of the registered mappings.
func (ns *Namespaces) All() map[string]string {
	all := make(map[string]string, len(ns.prefixes))
	for k, v := range ns.prefixes {
		all[k] = v
	}
	return all
}

// Expand turns a prefixed name like "foaf:name" into a full IRI.
func (ns *Namespaces) Expand(prefixedName string) (*NamedNode, error) {
	alias, local, ok := strings.Cut(prefixedName, ":")
	if !ok {
		return nil, errors.Wrapf(ErrNotPrefixedName, "%q", prefixedName)
	}
	iri, err := ns.Get(alias)
	if err != nil {
		return nil, err
	}
	return NewNamedNode(iri + local), nil
}

// Shorten turns an IRI into a prefixed name, splitting it after its last '/'
// or '#'. A trailing separator is kept in the local part. When no registered
// prefix matches, a generated one is added if create is set.
func (ns *Namespaces) Shorten(iri *NamedNode, create bool) (string, error) {
	if iri == nil {
		return "", errors.Wrap(ErrNilTerm, "iri")
	}
	value := iri.IRI
	p := strings.LastIndexAny(value, "/#")
	if p >= 0 && p+1 >= len(value) {
		p = strings.LastIndexAny(value[:len(value)-1], "/#")
	}
	prefix, local := value[:p+1], value[p+1:]

	shortName, found := ns.lookup(prefix)
	if !found {
		if !create {
			return "", errors.Wrapf(ErrNoMatchingPrefix, "%s", iri)
		}
		shortName = ns.Add(prefix, "")
	}
	return shortName + ":" + local, nil
}

// lookup finds a short name for prefix. Ties between several names mapped to
// the same prefix resolve to the lexically smallest name.
func (ns *Namespaces) lookup(prefix string) (string, bool) {
	best, found := "", false
	for name, iri := range ns.prefixes {
		if iri == prefix && (!found || name < best) {
			best, found = name, true
		}
	}
	return best, found
}
