package ytree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, input string) Node {
	t.Helper()
	n, err := Parse([]byte(input))
	require.NoError(t, err)
	require.NotNil(t, n)
	return n
}

func TestParseDocuments(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Node
	}{
		{
			name:     "flat mapping",
			input:    "name: demo\nversion: one\n",
			expected: NewMapping(
				Pair{Key: NewScalar("name"), Value: NewScalar("demo")},
				Pair{Key: NewScalar("version"), Value: NewScalar("one")},
			),
		},
		{
			name:  "nested blocks",
			input: "name: demo\nlabels:\n  - blue\n  - green\nowner:\n  team: core\n",
			expected: NewMapping(
				Pair{Key: NewScalar("name"), Value: NewScalar("demo")},
				Pair{Key: NewScalar("labels"), Value: NewSequence(NewScalar("blue"), NewScalar("green"))},
				Pair{Key: NewScalar("owner"), Value: NewMapping(Pair{Key: NewScalar("team"), Value: NewScalar("core")})},
			),
		},
		{
			name:     "scalar document",
			input:    "--- hello\n",
			expected: NewScalar("hello"),
		},
		{
			name:     "literal document",
			input:    "--- |\n  line one\n  line two\n",
			expected: NewLiteralScalar("line one", "line two"),
		},
		{
			name:     "literal keeps interior blank lines",
			input:    "script: |\n  one\n\n  two\n",
			expected: NewMapping(Pair{Key: NewScalar("script"), Value: NewLiteralScalar("one", "", "two")}),
		},
		{
			name:     "null and tilde are absent values",
			input:    "a: null\nb: ~\nc:\n",
			expected: NewMapping(
				Pair{Key: NewScalar("a"), Value: NewAbsentScalar()},
				Pair{Key: NewScalar("b"), Value: NewAbsentScalar()},
				Pair{Key: NewScalar("c"), Value: NewAbsentScalar()},
			),
		},
		{
			name:     "empty flow containers",
			input:    "seq: []\nmap: {}\n",
			expected: NewMapping(
				Pair{Key: NewScalar("seq"), Value: NewSequence()},
				Pair{Key: NewScalar("map"), Value: NewMapping()},
			),
		},
		{
			name:     "empty sequence document",
			input:    "[]\n",
			expected: NewSequence(),
		},
		{
			name:     "empty input is an absent scalar",
			input:    "",
			expected: NewAbsentScalar(),
		},
		{
			name:     "blank input is an absent scalar",
			input:    "\n\n",
			expected: NewAbsentScalar(),
		},
		{
			name:     "sequence of sequences",
			input:    "-\n  - a\n- b\n",
			expected: NewSequence(NewSequence(NewScalar("a")), NewScalar("b")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseOne(t, tc.input)
			require.True(t, tc.expected.Equal(got), "parsed tree differs:\n%s", got)
		})
	}
}

func TestParseComments(t *testing.T) {
	t.Run("head comment attaches to the root", func(t *testing.T) {
		root := parseOne(t, "# project manifest\nname: demo\n")
		require.Equal(t, "project manifest", root.Comment().Value())
	})

	t.Run("inline comment attaches to the scalar", func(t *testing.T) {
		root := parseOne(t, "name: demo # codename\n").(*Mapping)
		value := root.Get(NewScalar("name"))
		require.Equal(t, "codename", value.Comment().Value())
	})

	t.Run("entry comment attaches to the following value", func(t *testing.T) {
		root := parseOne(t, "name: demo\n# palette\ntags:\n  - blue\n").(*Mapping)
		tags := root.Get(NewScalar("tags"))
		require.Equal(t, KindSequence, tags.Kind())
		require.Equal(t, "palette", tags.Comment().Value())
	})

	t.Run("document comment on a bare scalar", func(t *testing.T) {
		root := parseOne(t, "--- hello # hi\n")
		require.Equal(t, "hi", root.Comment().Value())
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tab indentation",
			input:    "\tname: demo\n",
			expected: "ytree: parsing error at line 1, column 1: tab indentation is not allowed",
		},
		{
			name:     "unexpected indentation",
			input:    "a: 1\n    b: 2\n",
			expected: "ytree: parsing error at line 2, column 5: unexpected indentation",
		},
		{
			name:     "trailing content after document",
			input:    "- a\nkey: b\n",
			expected: "ytree: parsing error at line 2, column 1: unexpected content after document",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			require.Error(t, err)
			require.Equal(t, tc.expected, err.Error())

			var errs ParseErrors
			require.ErrorAs(t, err, &errs)
			require.NotEmpty(t, errs)
		})
	}
}

func TestParseMarshalRoundTrip(t *testing.T) {
	input := "# project manifest\n" +
		"name: demo # codename\n" +
		"labels:\n" +
		"  - blue\n" +
		"  - green\n" +
		"script: |\n" +
		"  echo one\n" +
		"  echo two\n" +
		"empty: null\n"

	node := parseOne(t, input)
	out, err := Marshal(node)
	require.NoError(t, err)
	require.Equal(t, input, string(out))
}
