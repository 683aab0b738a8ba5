package dataset

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

var (
	foo   = rdf.NewNamedNode("foo")
	bar   = rdf.NewNamedNode("bar")
	baz   = rdf.NewNamedNode("baz")
	graph = rdf.NewNamedNode("graph")
)

// fixtures returns:
//
//	0: foo bar "baz"
//	1: baz foo bar
//	2: bar baz foo
//	3: foo bar "baz"@en graph
func fixtures() []*rdf.Quad {
	return []*rdf.Quad{
		rdf.MustQuad(foo, bar, rdf.NewLiteral("baz"), nil),
		rdf.MustQuad(baz, foo, bar, nil),
		rdf.MustQuad(bar, baz, foo, nil),
		rdf.MustQuad(foo, bar, rdf.NewLiteralWithLanguage("baz", "en"), graph),
	}
}

func tmpl(t *testing.T, s rdf.Term, p *rdf.NamedNode, o rdf.Term) Matcher {
	t.Helper()
	qt, err := rdf.NewQuadTemplate(s, p, o, nil)
	require.NoError(t, err)
	return MatchTemplate(qt)
}

func subjectIs(value string) Matcher {
	return MatchFunc(func(q *rdf.Quad, _ *Dataset) bool {
		return q.Subject().Value() == value
	})
}

func literalObject(t *testing.T, d *Dataset, subject *rdf.NamedNode) float64 {
	t.Helper()
	q, err := d.Get(tmpl(t, subject, nil, nil))
	require.NoError(t, err)
	v, err := strconv.ParseFloat(q.Object().Value(), 64)
	require.NoError(t, err)
	return v
}

func TestAdd(t *testing.T) {
	quads := fixtures()
	d := New()
	for _, q := range quads[:3] {
		d.Add(q)
	}
	assert.Equal(t, 3, d.Count())

	d.AddAll(QuadSlice(quads))
	assert.Equal(t, 4, d.Count())
}

func TestAdd_Deduplicates(t *testing.T) {
	q := fixtures()[0]
	d := New()
	d.Add(q)
	d.Add(q)
	d.Add(rdf.MustQuad(rdf.NewNamedNode("foo"), rdf.NewNamedNode("bar"), rdf.NewLiteral("baz"), rdf.NewDefaultGraph()))
	d.Add(nil)
	assert.Equal(t, 1, d.Count())
}

func TestAddAll_Self(t *testing.T) {
	d := New(fixtures()...)
	d.AddAll(d)
	assert.Equal(t, 4, d.Count())
}

func TestIterationOrder(t *testing.T) {
	quads := fixtures()
	d := New(quads...)
	i := 0
	for q := range d.All() {
		assert.True(t, q.Equals(quads[i]), "quad %d out of order", i)
		i++
	}
	assert.Equal(t, 4, i)
	assert.Len(t, d.Quads(), 4)
}

func TestGet(t *testing.T) {
	quads := fixtures()
	d := New(quads...)
	missing := rdf.MustQuad(foo, bar, rdf.NewLiteralWithLanguage("baz", "de"), nil)

	t.Run("by quad", func(t *testing.T) {
		for _, q := range quads {
			assert.True(t, d.Exists(MatchQuad(q)))
			got, err := d.Get(MatchQuad(q))
			require.NoError(t, err)
			assert.True(t, q.Equals(got))
		}
		assert.False(t, d.Exists(MatchQuad(missing)))
		_, err := d.Get(MatchQuad(missing))
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("by template", func(t *testing.T) {
		got, err := d.Get(tmpl(t, bar, nil, nil))
		require.NoError(t, err)
		assert.True(t, quads[2].Equals(got))

		_, err = d.Get(tmpl(t, nil, bar, nil))
		assert.ErrorIs(t, err, ErrAmbiguousMatch)
		assert.False(t, d.Exists(tmpl(t, nil, bar, nil)))
	})

	t.Run("by function", func(t *testing.T) {
		got, err := d.Get(subjectIs("bar"))
		require.NoError(t, err)
		assert.True(t, quads[2].Equals(got))

		_, err = d.Get(MatchFunc(func(q *rdf.Quad, _ *Dataset) bool {
			return q.Predicate().Value() == "bar"
		}))
		assert.ErrorIs(t, err, ErrAmbiguousMatch)
	})

	t.Run("by collection", func(t *testing.T) {
		got, err := d.Get(MatchIn(QuadSlice{missing, quads[1]}))
		require.NoError(t, err)
		assert.True(t, quads[1].Equals(got))
	})
}

func TestGet_NotFoundAndAmbiguousAreDistinct(t *testing.T) {
	d := New(
		rdf.MustQuad(foo, bar, rdf.NewLiteral(1), nil),
		rdf.MustQuad(foo, baz, rdf.NewLiteral(2), nil),
	)

	_, err := d.Get(tmpl(t, foo, nil, nil))
	assert.ErrorIs(t, err, ErrAmbiguousMatch)
	assert.False(t, errors.Is(err, ErrNoMatch))

	_, err = d.Get(tmpl(t, bar, nil, nil))
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.False(t, errors.Is(err, ErrAmbiguousMatch))
}

func TestFirst(t *testing.T) {
	_, err := New().First()
	assert.ErrorIs(t, err, ErrNoMatch)

	quads := fixtures()
	d := New(quads...)
	got, err := d.First()
	require.NoError(t, err)
	assert.True(t, quads[0].Equals(got))

	d.Delete(MatchQuad(quads[0]))
	got, err = d.First()
	require.NoError(t, err)
	assert.True(t, quads[1].Equals(got))
}

func TestSet(t *testing.T) {
	quads := fixtures()
	d := New(quads[0], quads[1], quads[2])

	// by quad
	require.NoError(t, d.Set(MatchQuad(quads[1]), quads[3]))
	assert.Equal(t, 3, d.Count())
	require.NoError(t, d.Set(MatchQuad(quads[3]), quads[2]))
	assert.Equal(t, 2, d.Count())
	assert.True(t, d.Contains(quads[0]))
	assert.True(t, d.Contains(quads[2]))
	assert.False(t, d.Contains(quads[1]))
	assert.False(t, d.Contains(quads[3]))
	assert.ErrorIs(t, d.Set(MatchQuad(quads[3]), quads[1]), ErrNoMatch)

	// by template
	require.NoError(t, d.Set(tmpl(t, bar, baz, nil), quads[3]))
	assert.Equal(t, 2, d.Count())
	assert.True(t, d.Contains(quads[3]))
	assert.False(t, d.Contains(quads[2]))
	assert.ErrorIs(t, d.Set(tmpl(t, foo, nil, nil), quads[0]), ErrAmbiguousMatch)
	assert.ErrorIs(t, d.Set(tmpl(t, bar, foo, nil), quads[0]), ErrNoMatch)
	assert.ErrorIs(t, d.Set(tmpl(t, rdf.NewNamedNode("aaa"), nil, nil), quads[0]), ErrNoMatch)
	assert.Equal(t, 2, d.Count())

	// by function
	inGraph := MatchFunc(func(q *rdf.Quad, _ *Dataset) bool {
		return q.Graph().Value() == "graph"
	})
	require.NoError(t, d.Set(inGraph, quads[2]))
	assert.Equal(t, 2, d.Count())
	assert.True(t, d.Contains(quads[2]))
	assert.False(t, d.Contains(quads[3]))

	d.Add(quads[3])
	assert.ErrorIs(t, d.Set(subjectIs("foo"), quads[1]), ErrAmbiguousMatch)
	assert.ErrorIs(t, d.Set(subjectIs("aaa"), quads[1]), ErrNoMatch)
	assert.Equal(t, 3, d.Count())
}

func TestSet_SameQuadIsNoop(t *testing.T) {
	quads := fixtures()
	d := New(quads...)
	require.NoError(t, d.Set(MatchQuad(quads[0]), quads[0]))
	assert.True(t, d.Quads()[0].Equals(quads[0]), "unchanged quad must keep its position")
}

func TestUnset(t *testing.T) {
	quads := fixtures()
	d := New(quads...)

	require.NoError(t, d.Unset(MatchQuad(quads[0])))
	assert.Equal(t, 3, d.Count())
	assert.False(t, d.Contains(quads[0]))

	require.NoError(t, d.Unset(tmpl(t, quads[1].Subject(), nil, nil)))
	assert.Equal(t, 2, d.Count())
	assert.False(t, d.Contains(quads[1]))

	require.NoError(t, d.Unset(subjectIs("bar")))
	assert.Equal(t, 1, d.Count())
	assert.False(t, d.Contains(quads[2]))

	require.NoError(t, d.Unset(MatchQuad(quads[0])))
	assert.Equal(t, 1, d.Count())
	assert.True(t, d.Contains(quads[3]))
}

func TestUnset_Ambiguous(t *testing.T) {
	d := New(fixtures()...)
	assert.ErrorIs(t, d.Unset(tmpl(t, foo, nil, nil)), ErrAmbiguousMatch)
	assert.Equal(t, 4, d.Count())
}

func TestString(t *testing.T) {
	quads := fixtures()
	d := New(quads[0], quads[1])
	assert.Equal(t, quads[0].String()+"\n"+quads[1].String()+"\n", d.String())
	assert.Equal(t, "", New().String())
}

func TestString_Golden(t *testing.T) {
	f := rdf.NewDataFactory()
	alice := rdf.NewNamedNode("http://example.org/alice")
	knows := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/knows")
	name := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/name")
	age := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/age")
	g := rdf.NewNamedNode("http://example.org/graph1")

	claim := rdf.MustQuad(alice, knows, f.BlankNode(""), nil)
	d := New(
		rdf.MustQuad(alice, name, rdf.NewLiteral("Alice"), nil),
		rdf.MustQuad(alice, name, rdf.NewLiteralWithLanguage("Alicja", "pl"), g),
		rdf.MustQuad(alice, age, rdf.NewLiteral(30), nil),
		claim,
		rdf.MustQuad(claim, rdf.NewNamedNode("http://example.org/certainty"), rdf.NewLiteral(0.75), f.BlankNode("")),
	)

	gd := goldie.New(t)
	gd.Assert(t, "dataset_string", []byte(d.String()))
}

func TestEquals(t *testing.T) {
	quads := fixtures()
	f := rdf.NewDataFactory()
	d1 := New(quads[0], quads[1])
	d2 := New(quads[0], quads[1])
	assert.True(t, d1.Equals(d2))

	d2.Add(quads[2])
	assert.False(t, d1.Equals(d2))

	require.NoError(t, d2.Unset(MatchQuad(quads[2])))
	assert.True(t, d1.Equals(d2))

	require.NoError(t, d2.Unset(MatchQuad(quads[1])))
	assert.False(t, d1.Equals(d2))

	// blank nodes don't count
	d2.Add(quads[1])
	d1.Add(rdf.MustQuad(f.BlankNode(""), foo, rdf.NewLiteral("bar"), nil))
	assert.True(t, d1.Equals(d2))
	d2.Add(rdf.MustQuad(f.BlankNode(""), bar, rdf.NewLiteral("baz"), nil))
	assert.True(t, d1.Equals(d2))
	d2.Add(rdf.MustQuad(foo, bar, f.BlankNode(""), nil))
	assert.True(t, d1.Equals(d2))
	d2.Add(rdf.MustQuad(foo, bar, baz, f.BlankNode("")))
	assert.True(t, d1.Equals(d2))

	assert.False(t, d1.Equals(nil))
}

func TestCopy(t *testing.T) {
	quads := fixtures()
	d1 := New(quads...)

	// simple
	d2 := d1.Copy(NoFilter)
	assert.True(t, d1.Equals(d2))
	require.NoError(t, d2.Unset(MatchQuad(quads[0])))
	assert.Equal(t, 4, d1.Count())
	assert.Equal(t, 3, d2.Count())
	assert.False(t, d1.Equals(d2))

	// quad
	d2 = d1.Copy(MatchQuad(quads[0]))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 1, d2.Count())
	assert.True(t, d2.Contains(quads[0]))

	// template
	d2 = d1.Copy(tmpl(t, foo, nil, nil))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 2, d2.Count())
	d2.Add(quads[1], quads[2])
	assert.True(t, d1.Equals(d2))

	// collection
	d2 = d1.Copy(MatchIn(d1))
	assert.True(t, d1.Equals(d2))

	// function
	d2 = d1.Copy(MatchFunc(func(*rdf.Quad, *Dataset) bool { return false }))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 0, d2.Count())
}

func TestCopyExcept(t *testing.T) {
	quads := fixtures()
	d1 := New(quads...)

	// simple
	d2 := d1.CopyExcept(NoFilter)
	assert.True(t, d1.Equals(d2))

	// quad
	d2 = d1.CopyExcept(MatchQuad(quads[0]))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 3, d2.Count())
	d2.Add(quads[0])
	assert.True(t, d1.Equals(d2))

	// template
	d2 = d1.CopyExcept(tmpl(t, foo, nil, nil))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 2, d2.Count())
	d2.Add(quads[0], quads[3])
	assert.True(t, d1.Equals(d2))

	// collection
	d2 = d1.CopyExcept(MatchIn(d1))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 0, d2.Count())

	// function
	d2 = d1.CopyExcept(MatchFunc(func(*rdf.Quad, *Dataset) bool { return true }))
	assert.False(t, d1.Equals(d2))
	assert.Equal(t, 0, d2.Count())
}

func TestDelete(t *testing.T) {
	quads := fixtures()
	d1 := New(quads...)

	// quad
	d2 := d1.Copy(NoFilter)
	deleted := d2.Delete(MatchQuad(quads[0]))
	assert.Equal(t, 3, d2.Count())
	assert.False(t, d2.Contains(quads[0]))
	assert.Equal(t, 1, deleted.Count())
	assert.True(t, deleted.Contains(quads[0]))

	// template
	d2 = d1.Copy(NoFilter)
	deleted = d2.Delete(tmpl(t, foo, nil, nil))
	assert.Equal(t, 2, d2.Count())
	assert.Equal(t, 2, deleted.Count())
	assert.True(t, d2.Contains(quads[1]))
	assert.True(t, d2.Contains(quads[2]))

	// collection
	d2 = d1.Copy(NoFilter)
	deleted = d2.Delete(MatchIn(d1))
	assert.Equal(t, 0, d2.Count())
	assert.True(t, deleted.Equals(d1))

	// function
	d2 = d1.Copy(NoFilter)
	d2.Delete(subjectIs("foo"))
	assert.Equal(t, 2, d2.Count())
	assert.False(t, d2.Contains(quads[0]))
	assert.False(t, d2.Contains(quads[3]))

	// no match is not an error
	d2 = d1.Copy(NoFilter)
	deleted = d2.Delete(subjectIs("aaa"))
	assert.Equal(t, 4, d2.Count())
	assert.Equal(t, 0, deleted.Count())
}

func TestDeleteExcept(t *testing.T) {
	quads := fixtures()
	d1 := New(quads...)

	// quad
	d2 := d1.Copy(NoFilter)
	deleted := d2.DeleteExcept(MatchQuad(quads[0]))
	assert.Equal(t, 1, d2.Count())
	assert.Equal(t, 3, deleted.Count())
	assert.False(t, d2.Equals(d1))
	assert.True(t, d2.Contains(quads[0]))

	// template
	d2 = d1.Copy(NoFilter)
	d2.DeleteExcept(tmpl(t, foo, nil, nil))
	assert.Equal(t, 2, d2.Count())
	assert.True(t, d2.Contains(quads[0]))
	assert.True(t, d2.Contains(quads[3]))

	// collection
	d2 = d1.Copy(NoFilter)
	d2.DeleteExcept(MatchIn(d1))
	assert.Equal(t, 4, d2.Count())
	assert.True(t, d2.Equals(d1))

	// function
	d2 = d1.Copy(NoFilter)
	d2.DeleteExcept(subjectIs("foo"))
	assert.Equal(t, 2, d2.Count())
	assert.True(t, d2.Contains(quads[0]))
	assert.True(t, d2.Contains(quads[3]))

	// absent filter keeps nothing out
	d2 = d1.Copy(NoFilter)
	deleted = d2.DeleteExcept(NoFilter)
	assert.Equal(t, 0, d2.Count())
	assert.Equal(t, 4, deleted.Count())
}

func TestUnion(t *testing.T) {
	quads := fixtures()
	d1 := New(quads[0], quads[1])
	d2 := New(quads[1], quads[2])
	d11 := d1.Copy(NoFilter)
	d22 := d2.Copy(NoFilter)

	d3 := d1.Union(d2)
	assert.Equal(t, 2, d1.Count())
	assert.Equal(t, 2, d2.Count())
	assert.Equal(t, 3, d3.Count())
	assert.True(t, d11.Equals(d1))
	assert.True(t, d22.Equals(d2))
	assert.False(t, d3.Equals(d1))
	assert.False(t, d3.Equals(d2))
	for _, q := range quads[:3] {
		assert.True(t, d3.Contains(q))
	}
}

func TestXor(t *testing.T) {
	quads := fixtures()
	d1 := New(quads[0], quads[1])
	d2 := New(quads[1], quads[2])

	d3 := d1.Xor(d2)
	assert.Equal(t, 2, d1.Count())
	assert.Equal(t, 2, d2.Count())
	assert.Equal(t, 2, d3.Count())
	assert.False(t, d3.Equals(d1))
	assert.False(t, d3.Equals(d2))
	assert.True(t, d3.Contains(quads[0]))
	assert.True(t, d3.Contains(quads[2]))
	assert.False(t, d3.Contains(quads[1]))
}

func TestXor_WithSlice(t *testing.T) {
	quads := fixtures()
	d := New(quads[0], quads[1])
	x := d.Xor(QuadSlice{quads[1], quads[3]})
	assert.Equal(t, 2, x.Count())
	assert.True(t, x.Contains(quads[0]))
	assert.True(t, x.Contains(quads[3]))
}

func doubleLiteral(q *rdf.Quad) *rdf.Quad {
	lit, ok := q.Object().(*rdf.Literal)
	if !ok {
		return q
	}
	v, err := strconv.ParseFloat(lit.Value(), 64)
	if err != nil {
		return q
	}
	return q.WithObject(lit.WithValue(v * 2))
}

func TestForEach(t *testing.T) {
	d := New(
		rdf.MustQuad(foo, baz, rdf.NewLiteral(1), nil),
		rdf.MustQuad(bar, baz, rdf.NewLiteral(5), nil),
	)
	err := d.ForEach(func(q *rdf.Quad, _ *Dataset) (*rdf.Quad, error) {
		return doubleLiteral(q), nil
	}, NoFilter)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 2.0, literalObject(t, d, foo))
	assert.Equal(t, 10.0, literalObject(t, d, bar))
}

func TestForEach_Filtered(t *testing.T) {
	d := New(
		rdf.MustQuad(foo, baz, rdf.NewLiteral(1), nil),
		rdf.MustQuad(bar, baz, rdf.NewLiteral(5), nil),
	)
	err := d.ForEach(func(q *rdf.Quad, _ *Dataset) (*rdf.Quad, error) {
		return doubleLiteral(q), nil
	}, subjectIs("bar"))
	require.NoError(t, err)

	assert.Equal(t, 1.0, literalObject(t, d, foo))
	assert.Equal(t, 10.0, literalObject(t, d, bar))
}

func TestForEach_DeleteAndDeduplicate(t *testing.T) {
	quads := fixtures()
	d := New(quads...)

	// drop everything about foo, collapse the rest onto one quad
	err := d.ForEach(func(q *rdf.Quad, _ *Dataset) (*rdf.Quad, error) {
		if q.Subject().Equals(foo) {
			return nil, nil
		}
		return quads[1], nil
	}, NoFilter)
	require.NoError(t, err)

	assert.Equal(t, 1, d.Count())
	assert.True(t, d.Contains(quads[1]))
}

// doubleInteger doubles an xsd:integer object and keeps its datatype.
func doubleInteger(t *testing.T) ForEachFunc {
	return func(q *rdf.Quad, _ *Dataset) (*rdf.Quad, error) {
		n, err := strconv.ParseInt(q.Object().Value(), 10, 64)
		require.NoError(t, err)
		return q.WithObject(rdf.NewIntegerLiteral(n * 2)), nil
	}
}

func TestForEach_ResultCollidesWithPendingQuad(t *testing.T) {
	p := rdf.NewNamedNode("p")
	d := New(
		rdf.MustQuad(foo, p, rdf.NewLiteral(1), nil),
		rdf.MustQuad(foo, p, rdf.NewLiteral(2), nil),
	)

	// 1 -> 2 collides with the second quad, which is still in the dataset
	// when the first result is added; 2 -> 4 then replaces that quad.
	err := d.ForEach(doubleInteger(t), NoFilter)
	require.NoError(t, err)

	require.Equal(t, 1, d.Count())
	assert.True(t, d.Contains(rdf.MustQuad(foo, p, rdf.NewIntegerLiteral(4), nil)))
}

func TestForEach_ResultCollidesWithUntouchedQuad(t *testing.T) {
	p := rdf.NewNamedNode("p")
	kept := rdf.MustQuad(bar, p, rdf.NewLiteral(2), nil)
	d := New(
		rdf.MustQuad(bar, p, rdf.NewLiteral(1), nil),
		kept,
	)

	err := d.ForEach(doubleInteger(t), MatchFunc(func(q *rdf.Quad, _ *Dataset) bool {
		return q.Object().Value() == "1"
	}))
	require.NoError(t, err)

	require.Equal(t, 1, d.Count())
	assert.True(t, d.Contains(kept))
}

func TestForEach_ErrorLeavesDatasetUnchanged(t *testing.T) {
	quads := fixtures()
	d := New(quads...)
	before := d.Copy(NoFilter)
	boom := errors.New("boom")

	calls := 0
	err := d.ForEach(func(q *rdf.Quad, _ *Dataset) (*rdf.Quad, error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return nil, nil
	}, NoFilter)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, d.Count())
	assert.True(t, d.Equals(before))
	for i, q := range d.Quads() {
		assert.True(t, q.Equals(quads[i]))
	}
}

func TestForEach_SeesDatasetBeforeWalk(t *testing.T) {
	d := New(fixtures()...)
	var counts []int
	err := d.ForEach(func(q *rdf.Quad, ds *Dataset) (*rdf.Quad, error) {
		counts = append(counts, ds.Count())
		return nil, nil
	}, NoFilter)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4, 4}, counts)
	assert.Equal(t, 0, d.Count())
}

func TestMap(t *testing.T) {
	d1 := New(
		rdf.MustQuad(foo, baz, rdf.NewLiteral(1), nil),
		rdf.MustQuad(bar, baz, rdf.NewLiteral(5), nil),
	)
	d2 := d1.Map(func(q *rdf.Quad, _ *Dataset) *rdf.Quad {
		return doubleLiteral(q)
	}, NoFilter)

	assert.Equal(t, 2, d1.Count())
	assert.Equal(t, 1.0, literalObject(t, d1, foo))
	assert.Equal(t, 5.0, literalObject(t, d1, bar))
	assert.Equal(t, 2, d2.Count())
	assert.Equal(t, 2.0, literalObject(t, d2, foo))
	assert.Equal(t, 10.0, literalObject(t, d2, bar))
}

func TestMap_Filtered(t *testing.T) {
	d1 := New(fixtures()...)
	d2 := d1.Map(func(q *rdf.Quad, _ *Dataset) *rdf.Quad { return q }, tmpl(t, foo, nil, nil))
	assert.Equal(t, 2, d2.Count())
	assert.Equal(t, 4, d1.Count())
}

func TestReduce(t *testing.T) {
	d := New(
		rdf.MustQuad(foo, baz, rdf.NewLiteral(1), nil),
		rdf.MustQuad(bar, baz, rdf.NewLiteral(5), nil),
	)
	sum := Reduce(d, func(acc float64, q *rdf.Quad, _ *Dataset) float64 {
		v, _ := strconv.ParseFloat(q.Object().Value(), 64)
		return acc + v
	}, 0, NoFilter)

	assert.Equal(t, 6.0, sum)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 1.0, literalObject(t, d, foo))

	subjects := Reduce(d, func(acc []string, q *rdf.Quad, _ *Dataset) []string {
		return append(acc, q.Subject().Value())
	}, nil, subjectIs("bar"))
	assert.Equal(t, []string{"bar"}, subjects)
}

func TestAnyNone(t *testing.T) {
	quads := fixtures()
	d1 := New(quads...)
	aaa := rdf.NewNamedNode("aaa")
	other, err := quads[0].WithSubject(aaa)
	require.NoError(t, err)

	// quad
	assert.True(t, d1.Any(MatchQuad(quads[0])))
	assert.False(t, d1.None(MatchQuad(quads[0])))
	assert.False(t, d1.Any(MatchQuad(other)))
	assert.True(t, d1.None(MatchQuad(other)))

	// template
	assert.True(t, d1.Any(tmpl(t, foo, nil, nil)))
	assert.False(t, d1.None(tmpl(t, foo, nil, nil)))
	assert.False(t, d1.Any(tmpl(t, aaa, nil, nil)))
	assert.True(t, d1.None(tmpl(t, aaa, nil, nil)))

	// collection
	assert.True(t, d1.Any(MatchIn(New(quads[0]))))
	assert.False(t, d1.None(MatchIn(New(quads[0]))))
	assert.False(t, d1.Any(MatchIn(New(other))))
	assert.True(t, d1.None(MatchIn(New(other))))

	// function
	assert.True(t, d1.Any(subjectIs("foo")))
	assert.False(t, d1.None(subjectIs("foo")))
	assert.False(t, d1.Any(subjectIs("aaa")))
	assert.True(t, d1.None(subjectIs("aaa")))
}

func TestEvery(t *testing.T) {
	quads := fixtures()
	other, err := quads[0].WithSubject(rdf.NewNamedNode("aaa"))
	require.NoError(t, err)

	// quad
	d1 := New(quads[0])
	assert.True(t, d1.Every(MatchQuad(quads[0])))
	d1.Add(quads[1])
	assert.False(t, d1.Every(MatchQuad(quads[0])))
	assert.False(t, d1.Every(MatchQuad(other)))

	// template
	d1 = New(quads[0], quads[3])
	assert.True(t, d1.Every(tmpl(t, foo, nil, nil)))
	assert.False(t, d1.None(tmpl(t, nil, nil, rdf.NewLiteralWithLanguage("baz", "en"))))

	// function
	assert.True(t, d1.Every(subjectIs("foo")))
	assert.False(t, d1.Every(MatchFunc(func(q *rdf.Quad, _ *Dataset) bool {
		lit, ok := q.Object().(*rdf.Literal)
		return ok && lit.Language == "en"
	})))

	// vacuous truth
	assert.True(t, New().Every(subjectIs("foo")))
}

func TestListTerms(t *testing.T) {
	d := New(fixtures()...)

	subjects := d.ListSubjects(NoFilter)
	require.Len(t, subjects, 3)
	assert.True(t, subjects[0].Equals(foo))
	assert.True(t, subjects[1].Equals(baz))
	assert.True(t, subjects[2].Equals(bar))

	predicates := d.ListPredicates(tmpl(t, foo, nil, nil))
	require.Len(t, predicates, 1)
	assert.True(t, predicates[0].Equals(bar))

	objects := d.ListObjects(tmpl(t, foo, nil, nil))
	require.Len(t, objects, 2)
	assert.True(t, objects[0].Equals(rdf.NewLiteral("baz")))
	assert.True(t, objects[1].Equals(rdf.NewLiteralWithLanguage("baz", "en")))

	graphs := d.ListGraphs(NoFilter)
	require.Len(t, graphs, 2)
	assert.Equal(t, rdf.TermTypeDefaultGraph, graphs[0].Type())
	assert.True(t, graphs[1].Equals(graph))

	assert.Empty(t, d.ListSubjects(subjectIs("aaa")))
}

func TestMatchInSelf(t *testing.T) {
	d := New(fixtures()...)
	deleted := d.Delete(MatchIn(d))
	assert.Equal(t, 4, deleted.Count())
	assert.Equal(t, 0, d.Count())
}

func TestQuotedQuadsDeduplicateStructurally(t *testing.T) {
	inner1 := rdf.MustQuad(foo, bar, baz, nil)
	inner2 := rdf.MustQuad(rdf.NewNamedNode("foo"), rdf.NewNamedNode("bar"), rdf.NewNamedNode("baz"), nil)

	d := New(
		rdf.MustQuad(inner1, bar, rdf.NewLiteral(true), nil),
		rdf.MustQuad(inner2, bar, rdf.NewLiteral(true), nil),
	)
	assert.Equal(t, 1, d.Count())
	assert.True(t, d.Any(tmpl(t, inner2, nil, nil)))
}

func TestMatcherConstructorsRejectNil(t *testing.T) {
	var nilDataset *Dataset
	assert.Panics(t, func() { MatchQuad(nil) })
	assert.Panics(t, func() { MatchTemplate(nil) })
	assert.Panics(t, func() { MatchFunc(nil) })
	assert.Panics(t, func() { MatchIn(nil) })
	assert.Panics(t, func() { MatchIn(nilDataset) })
	assert.False(t, NoFilter.IsSet())
	assert.True(t, MatchQuad(fixtures()[0]).IsSet())
}
