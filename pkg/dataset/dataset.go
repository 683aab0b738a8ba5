// Package dataset implements an in-memory, ordered, deduplicated collection of
// RDF quads. Every read, write and filter operation selects quads through a
// Matcher. There is no index: lookups are linear scans.
//
// A Dataset is not safe for concurrent use. Callers sharing one across
// goroutines must lock around it or hand out copies.
package dataset

import (
	"iter"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

var (
	// ErrNoMatch is returned when a single-quad lookup matches nothing.
	ErrNoMatch = errors.New("dataset: no quad matched")
	// ErrAmbiguousMatch is returned when a single-quad lookup matches more
	// than one quad.
	ErrAmbiguousMatch = errors.New("dataset: more than one quad matched")
)

// Dataset is an ordered set of quads. Iteration follows insertion order.
type Dataset struct {
	quads []*rdf.Quad
}

// New creates a dataset holding the given quads, duplicates dropped.
func New(quads ...*rdf.Quad) *Dataset {
	d := &Dataset{}
	d.Add(quads...)
	return d
}

// Add appends every quad not already present. Duplicates and nil quads are
// skipped silently.
func (d *Dataset) Add(quads ...*rdf.Quad) {
	for _, q := range quads {
		d.add(q)
	}
}

// AddAll adds every quad of src.
func (d *Dataset) AddAll(src QuadSource) {
	if src == nil {
		return
	}
	// Snapshot first so that d.AddAll(d) terminates.
	var pending []*rdf.Quad
	for q := range src.All() {
		pending = append(pending, q)
	}
	d.Add(pending...)
}

func (d *Dataset) add(q *rdf.Quad) {
	if q == nil || contains(d.quads, q) {
		return
	}
	d.quads = append(d.quads, q)
}

func contains(quads []*rdf.Quad, q *rdf.Quad) bool {
	for _, existing := range quads {
		if existing.Equals(q) {
			return true
		}
	}
	return false
}

// Count returns the number of stored quads.
func (d *Dataset) Count() int {
	return len(d.quads)
}

// All iterates over the quads present when iteration starts.
func (d *Dataset) All() iter.Seq[*rdf.Quad] {
	quads := d.quads
	return func(yield func(*rdf.Quad) bool) {
		for _, q := range quads {
			if !yield(q) {
				return
			}
		}
	}
}

// Quads returns a copy of the stored quads in iteration order.
func (d *Dataset) Quads() []*rdf.Quad {
	return append([]*rdf.Quad(nil), d.quads...)
}

// Contains reports whether a quad structurally equal to q is stored.
func (d *Dataset) Contains(q *rdf.Quad) bool {
	return q != nil && contains(d.quads, q)
}

// String renders one quad per line, each line newline terminated.
func (d *Dataset) String() string {
	var sb strings.Builder
	for _, q := range d.quads {
		sb.WriteString(q.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// matching returns the indexes of quads selected by m; the absent filter
// selects everything.
func (d *Dataset) matching(m Matcher) []int {
	var idx []int
	for i, q := range d.quads {
		if m.matches(q, d, true) {
			idx = append(idx, i)
		}
	}
	return idx
}

// notMatching returns the indexes of quads not selected by m; the absent
// filter selects nothing, so every index is returned.
func (d *Dataset) notMatching(m Matcher) []int {
	var idx []int
	for i, q := range d.quads {
		if !m.matches(q, d, false) {
			idx = append(idx, i)
		}
	}
	return idx
}

// single resolves m to exactly one stored quad.
func (d *Dataset) single(m Matcher) (int, error) {
	found := -1
	for i, q := range d.quads {
		if !m.matches(q, d, true) {
			continue
		}
		if found >= 0 {
			return -1, ErrAmbiguousMatch
		}
		found = i
	}
	if found < 0 {
		return -1, ErrNoMatch
	}
	return found, nil
}

// pick returns the quads at the given indexes as a new dataset.
func (d *Dataset) pick(idx []int) *Dataset {
	out := &Dataset{quads: make([]*rdf.Quad, 0, len(idx))}
	for _, i := range idx {
		out.quads = append(out.quads, d.quads[i])
	}
	return out
}

// remove rebuilds the backing slice without the quads at the given indexes.
func (d *Dataset) remove(idx []int) {
	if len(idx) == 0 {
		return
	}
	drop := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		drop[i] = struct{}{}
	}
	kept := make([]*rdf.Quad, 0, len(d.quads)-len(drop))
	for i, q := range d.quads {
		if _, ok := drop[i]; !ok {
			kept = append(kept, q)
		}
	}
	d.quads = kept
}

// Get returns the only quad selected by m. It fails with ErrNoMatch or
// ErrAmbiguousMatch otherwise.
func (d *Dataset) Get(m Matcher) (*rdf.Quad, error) {
	i, err := d.single(m)
	if err != nil {
		return nil, err
	}
	return d.quads[i], nil
}

// Exists reports whether m selects exactly one quad.
func (d *Dataset) Exists(m Matcher) bool {
	_, err := d.single(m)
	return err == nil
}

// First returns the first quad in iteration order, or ErrNoMatch when the
// dataset is empty.
func (d *Dataset) First() (*rdf.Quad, error) {
	if len(d.quads) == 0 {
		return nil, ErrNoMatch
	}
	return d.quads[0], nil
}

// Set replaces the only quad selected by m with q. The dataset is left
// untouched when m selects zero or several quads.
func (d *Dataset) Set(m Matcher, q *rdf.Quad) error {
	if q == nil {
		return errors.Wrap(rdf.ErrNilTerm, "dataset: replacement quad")
	}
	i, err := d.single(m)
	if err != nil {
		return err
	}
	if d.quads[i].Equals(q) {
		return nil
	}
	d.remove([]int{i})
	d.add(q)
	return nil
}

// Unset removes the only quad selected by m. Zero matches is a no-op; several
// matches fail with ErrAmbiguousMatch and remove nothing.
func (d *Dataset) Unset(m Matcher) error {
	i, err := d.single(m)
	switch {
	case errors.Is(err, ErrNoMatch):
		return nil
	case err != nil:
		return err
	}
	d.remove([]int{i})
	return nil
}

// Copy returns a new dataset with the quads selected by m.
func (d *Dataset) Copy(m Matcher) *Dataset {
	return d.pick(d.matching(m))
}

// CopyExcept returns a new dataset with the quads not selected by m.
func (d *Dataset) CopyExcept(m Matcher) *Dataset {
	return d.pick(d.notMatching(m))
}

// Delete removes the quads selected by m and returns them.
func (d *Dataset) Delete(m Matcher) *Dataset {
	idx := d.matching(m)
	deleted := d.pick(idx)
	d.remove(idx)
	return deleted
}

// DeleteExcept removes the quads not selected by m and returns them.
func (d *Dataset) DeleteExcept(m Matcher) *Dataset {
	idx := d.notMatching(m)
	deleted := d.pick(idx)
	d.remove(idx)
	return deleted
}

// ForEachFunc rewrites a quad. Returning nil drops it.
type ForEachFunc func(q *rdf.Quad, d *Dataset) (*rdf.Quad, error)

// ForEach replaces every quad selected by m with the result of fn. The set of
// visited quads is fixed before the first call. Each visited quad is taken out
// before its result is added, and a result equal to a quad still present at
// that point is dropped, including selected quads not visited yet. Surviving
// results are appended in visit order after the untouched quads. fn observes
// the dataset as it was before the walk and must not modify it. If fn fails
// the dataset is left unchanged.
func (d *Dataset) ForEach(fn ForEachFunc, m Matcher) error {
	idx := d.matching(m)
	if len(idx) == 0 {
		return nil
	}
	visited := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		visited[i] = struct{}{}
	}
	staged := make([]*rdf.Quad, 0, len(d.quads))
	for i, q := range d.quads {
		if _, ok := visited[i]; !ok {
			staged = append(staged, q)
		}
	}
	for k, i := range idx {
		q := d.quads[i]
		result, err := fn(q, d)
		if err != nil {
			return errors.Wrapf(err, "dataset: rewriting %s", q)
		}
		if result == nil || contains(staged, result) || d.pendingContains(idx[k+1:], result) {
			continue
		}
		staged = append(staged, result)
	}
	d.quads = staged
	return nil
}

// pendingContains reports whether one of the quads at the given indexes equals q.
func (d *Dataset) pendingContains(idx []int, q *rdf.Quad) bool {
	for _, i := range idx {
		if d.quads[i].Equals(q) {
			return true
		}
	}
	return false
}

// MapFunc transforms a quad. Returning nil drops it from the result.
type MapFunc func(q *rdf.Quad, d *Dataset) *rdf.Quad

// Map returns a new dataset holding fn applied to every quad selected by m.
// The receiver is not modified.
func (d *Dataset) Map(fn MapFunc, m Matcher) *Dataset {
	out := &Dataset{}
	for _, i := range d.matching(m) {
		out.add(fn(d.quads[i], d))
	}
	return out
}

// Reduce folds fn over the quads of d selected by m, in iteration order.
func Reduce[T any](d *Dataset, fn func(acc T, q *rdf.Quad, d *Dataset) T, initial T, m Matcher) T {
	acc := initial
	for _, i := range d.matching(m) {
		acc = fn(acc, d.quads[i], d)
	}
	return acc
}

// Any reports whether m selects at least one quad.
func (d *Dataset) Any(m Matcher) bool {
	for _, q := range d.quads {
		if m.matches(q, d, true) {
			return true
		}
	}
	return false
}

// None reports whether m selects no quad.
func (d *Dataset) None(m Matcher) bool {
	return !d.Any(m)
}

// Every reports whether m selects all quads. It is true for an empty dataset.
func (d *Dataset) Every(m Matcher) bool {
	for _, q := range d.quads {
		if !m.matches(q, d, true) {
			return false
		}
	}
	return true
}

// Union returns a new dataset with the quads of d followed by those of other.
func (d *Dataset) Union(other QuadSource) *Dataset {
	out := d.Copy(NoFilter)
	out.AddAll(other)
	return out
}

// Xor returns the symmetric difference of d and other.
func (d *Dataset) Xor(other QuadSource) *Dataset {
	out := d.Union(other)
	out.Delete(MatchIn(d.Copy(MatchIn(other))))
	return out
}

// ListSubjects returns the distinct subjects of the quads selected by m, in
// first seen order.
func (d *Dataset) ListSubjects(m Matcher) []rdf.Term {
	return listTerms(d, m, (*rdf.Quad).Subject)
}

func (d *Dataset) ListPredicates(m Matcher) []*rdf.NamedNode {
	return listTerms(d, m, (*rdf.Quad).Predicate)
}

func (d *Dataset) ListObjects(m Matcher) []rdf.Term {
	return listTerms(d, m, (*rdf.Quad).Object)
}

func (d *Dataset) ListGraphs(m Matcher) []rdf.Term {
	return listTerms(d, m, (*rdf.Quad).Graph)
}

func listTerms[T rdf.Term](d *Dataset, m Matcher, part func(*rdf.Quad) T) []T {
	var seen []T
	for _, i := range d.matching(m) {
		term := part(d.quads[i])
		dup := false
		for _, s := range seen {
			if s.Equals(term) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, term)
		}
	}
	return seen
}

// Equals compares the quads of d and other ignoring every quad whose
// subject, object or graph is a blank node, since blank node identifiers
// are not expected to line up across independently built datasets.
func (d *Dataset) Equals(other *Dataset) bool {
	if other == nil {
		return false
	}
	n := 0
	for _, q := range other.quads {
		if involvesBlankNode(q) {
			continue
		}
		if !contains(d.quads, q) {
			return false
		}
		n++
	}
	for _, q := range d.quads {
		if !involvesBlankNode(q) {
			n--
		}
	}
	return n == 0
}

func involvesBlankNode(q *rdf.Quad) bool {
	return q.Subject().Type() == rdf.TermTypeBlankNode ||
		q.Object().Type() == rdf.TermTypeBlankNode ||
		q.Graph().Type() == rdf.TermTypeBlankNode
}
