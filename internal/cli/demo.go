package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aleksaelezovic/simplerdf/internal/encoding"
	"github.com/aleksaelezovic/simplerdf/internal/storage"
	"github.com/aleksaelezovic/simplerdf/pkg/dataset"
	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
	"github.com/aleksaelezovic/simplerdf/pkg/store"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a demo with sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd.OutOrStdout())
		},
	}
}

func runDemo(opts *RootOptions, w io.Writer) error {
	ns := opts.Config.NamespaceMap()
	ns.Add("http://example.org/", "ex")
	ns.Add("http://xmlns.com/foaf/0.1/", "foaf")
	f := rdf.NewDataFactory()

	iri := func(prefixed string) *rdf.NamedNode {
		n, err := ns.Expand(prefixed)
		if err != nil {
			panic(err)
		}
		return n
	}
	short := func(t rdf.Term) string {
		if n, ok := t.(*rdf.NamedNode); ok {
			if s, err := ns.Shorten(n, false); err == nil {
				return s
			}
		}
		return t.String()
	}
	printQuad := func(q *rdf.Quad) {
		line := short(q.Subject()) + " " + short(q.Predicate()) + " " + short(q.Object())
		if q.Graph().Type() != rdf.TermTypeDefaultGraph {
			line += " " + short(q.Graph())
		}
		fmt.Fprintf(w, "  ✓ %s\n", line)
	}

	alice, bob, charlie := iri("ex:alice"), iri("ex:bob"), iri("ex:charlie")
	name, age, knows := iri("foaf:name"), iri("foaf:age"), iri("foaf:knows")
	graph1 := iri("ex:graph1")

	fmt.Fprintln(w, "=== simplerdf Dataset Demo ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Adding sample data...")

	d := dataset.New()
	for _, q := range []*rdf.Quad{
		rdf.MustQuad(alice, name, rdf.NewLiteral("Alice"), nil),
		rdf.MustQuad(alice, age, rdf.NewLiteral(30), nil),
		rdf.MustQuad(alice, knows, bob, nil),
		rdf.MustQuad(bob, name, rdf.NewLiteral("Bob"), nil),
		rdf.MustQuad(bob, age, rdf.NewLiteral(25), nil),
		rdf.MustQuad(charlie, name, rdf.NewLiteralWithLanguage("Charles", "en"), graph1),
		rdf.MustQuad(charlie, knows, f.BlankNode(""), graph1),
	} {
		d.Add(q)
		printQuad(q)
	}
	// duplicates are ignored
	d.Add(rdf.MustQuad(alice, name, rdf.NewLiteral("Alice"), nil))
	fmt.Fprintf(w, "\nTotal quads: %d\n", d.Count())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Lookups ===")
	fmt.Fprintln(w)

	q, err := d.Get(dataset.MatchTemplate(rdf.MustQuadTemplate(bob, name, nil, nil)))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Bob's name: %s\n", q.Object())

	_, err = d.Get(dataset.MatchTemplate(rdf.MustQuadTemplate(alice, nil, nil, nil)))
	fmt.Fprintf(w, "Single quad about alice: %v\n", err)

	if err := d.Set(dataset.MatchQuad(q), q.WithObject(rdf.NewLiteral("Robert"))); err != nil {
		return err
	}
	fmt.Fprintf(w, "Renamed bob: %t\n", d.Exists(dataset.MatchTemplate(rdf.MustQuadTemplate(bob, name, rdf.NewLiteral("Robert"), nil))))

	if err := d.Unset(dataset.MatchTemplate(rdf.MustQuadTemplate(charlie, knows, nil, nil))); err != nil {
		return err
	}
	fmt.Fprintf(w, "After unset: %d quads\n", d.Count())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Transformations ===")
	fmt.Fprintln(w)

	ages := dataset.MatchTemplate(rdf.MustQuadTemplate(nil, age, nil, nil))
	total := dataset.Reduce(d, func(acc int, q *rdf.Quad, _ *dataset.Dataset) int {
		n, _ := strconv.Atoi(q.Object().Value())
		return acc + n
	}, 0, ages)
	fmt.Fprintf(w, "Sum of ages: %d\n", total)

	err = d.ForEach(func(q *rdf.Quad, _ *dataset.Dataset) (*rdf.Quad, error) {
		n, err := strconv.Atoi(q.Object().Value())
		if err != nil {
			return nil, err
		}
		return q.WithObject(rdf.NewLiteral(n + 1)), nil
	}, ages)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "A year later:")
	for q := range d.Copy(ages).All() {
		printQuad(q)
	}

	inGraph := d.Copy(dataset.MatchFunc(func(q *rdf.Quad, _ *dataset.Dataset) bool {
		return q.Graph().Equals(graph1)
	}))
	fmt.Fprintf(w, "Quads in %s: %d\n", short(graph1), inGraph.Count())

	people := d.Copy(dataset.MatchTemplate(rdf.MustQuadTemplate(nil, name, nil, nil)))
	friends := d.Copy(dataset.MatchTemplate(rdf.MustQuadTemplate(alice, nil, nil, nil)))
	fmt.Fprintf(w, "Union: %d quads, xor: %d quads\n", people.Union(friends).Count(), people.Xor(friends).Count())

	fmt.Fprint(w, "Subjects:")
	for _, s := range d.ListSubjects(dataset.NoFilter) {
		fmt.Fprintf(w, " %s", short(s))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Snapshots ===")
	fmt.Fprintln(w)

	backend, err := storage.NewBadgerStorage()
	if err != nil {
		return err
	}
	snapshots := store.NewSnapshotStore(backend, encoding.NewTermEncoder(), encoding.NewTermDecoder(),
		store.WithLogger(opts.Logger),
		store.WithMetrics(store.NewMetrics(nil)))
	defer snapshots.Close()

	if err := snapshots.Save("people", d); err != nil {
		return err
	}
	loaded, err := snapshots.Load("people")
	if err != nil {
		return err
	}
	loaded.Delete(dataset.NoFilter)
	again, err := snapshots.Load("people")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved %d quads, reloaded %d, snapshot matches dataset: %t\n", d.Count(), again.Count(), again.Equals(d))

	fmt.Fprintln(w, "\n=== Demo Complete ===")
	return nil
}
