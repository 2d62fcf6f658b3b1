package ytree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceCompare(t *testing.T) {
	self := NewSequence(NewScalar("a"))

	testCases := []struct {
		name  string
		seq   *Sequence
		other Node
		sign  int
	}{
		{name: "same instance", seq: self, other: self, sign: 0},
		{name: "nil sorts first", seq: NewSequence(), other: nil, sign: 1},
		{name: "sorts after any scalar", seq: NewSequence(), other: NewScalar("zzz"), sign: 1},
		{name: "sorts before any mapping", seq: NewSequence(NewScalar("z")), other: NewMapping(), sign: -1},
		{name: "shorter sorts first", seq: NewSequence(NewScalar("a")), other: NewSequence(NewScalar("a"), NewScalar("b")), sign: -1},
		{name: "pairwise element order", seq: NewSequence(NewScalar("a")), other: NewSequence(NewScalar("b")), sign: -1},
		{name: "equal contents", seq: NewSequence(NewScalar("a")), other: NewSequence(NewScalar("a")), sign: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.seq.Compare(tc.other)
			switch {
			case tc.sign < 0:
				require.Negative(t, got)
			case tc.sign > 0:
				require.Positive(t, got)
			default:
				require.Zero(t, got)
			}
		})
	}
}

func TestSequenceEqualAndHash(t *testing.T) {
	a := NewSequence(NewScalar("x"), NewAbsentScalar())
	b := NewSequence(NewScalar("x"), NewAbsentScalar())

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(NewScalar("x")))
	require.False(t, a.Equal(NewSequence(NewScalar("x"))))
}

func TestSequenceSort(t *testing.T) {
	m := NewMapping(Pair{Key: NewScalar("k"), Value: NewScalar("v")})
	seq := NewSequence(m, NewScalar("banana"), NewSequence(), NewScalar("apple"))

	sorted := seq.Sort()
	require.Equal(t, []Node{
		NewScalar("apple"),
		NewScalar("banana"),
		NewSequence(),
		m,
	}, sorted.Values())

	// The receiver keeps its original order.
	require.Equal(t, 4, seq.Len())
	require.True(t, seq.Values()[0].Equal(m))
}

func TestSequenceIsEmpty(t *testing.T) {
	require.True(t, NewSequence().IsEmpty())
	require.False(t, NewSequence(NewAbsentScalar()).IsEmpty())
}

func TestSequenceString(t *testing.T) {
	seq := NewSequence(NewScalar("blue"), NewScalar("green"))
	require.Equal(t, "- blue\n- green\n", seq.String())
	require.Equal(t, "[]\n", NewSequence().String())
}
