/*
Package ytree models YAML-like documents as immutable node trees composed of
scalars, sequences and mappings, and prints them back as indented block text.

Every node shares one behavioral contract: value-based equality and hashing,
a total order over arbitrary node mixes, emptiness classification, and
deterministic rendering including inline comments. Comments never take part
in comparison; they only matter when printing.

1. Building and printing trees

Trees are built programmatically from constructors and printed with Marshal
or a Printer:

	doc := ytree.NewMapping(
		ytree.Pair{Key: ytree.NewScalar("name"), Value: ytree.NewScalar("demo")},
		ytree.Pair{
			Key:   ytree.NewScalar("tags"),
			Value: ytree.NewSequence(ytree.NewScalar("blue"), ytree.NewScalar("green")),
		},
	)

	out, err := ytree.Marshal(doc)
	if err != nil {
		// handle error
	}
	// name: demo
	// tags:
	//   - blue
	//   - green

Nodes are immutable after construction; WithComment and Put return modified
copies. The String method of any node renders it as a standalone document,
so a bare scalar prints after the "---" document start marker.

2. Ordering mixed node collections

The Compare method defines a total order across all node kinds, with scalars
ranking before sequences and sequences before mappings, so heterogeneous
collections sort deterministically:

	seq := ytree.NewSequence(mapping, ytree.NewScalar("b"), ytree.NewScalar("a"))
	sorted := seq.Sort() // [a b mapping]

3. Round-tripping text

Parse reads the block subset the printer emits (mappings, sequences, plain
and literal scalars, full-line and inline comments) back into a node tree:

	n, err := ytree.Parse(out)
	if err != nil {
		// handle error
	}
	// n.Equal(doc) == true

Nested structures always print with the dash or key on its own line, and
Parse expects the same shape; inline flow collections other than the empty
markers "[]" and "{}" are not part of the subset.
*/
package ytree
