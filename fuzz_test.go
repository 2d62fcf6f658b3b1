package ytree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ytree "github.com/KimNorgaard/go-ytree"
)

func FuzzParseRoundTrip(f *testing.F) {
	// Seed the corpus with the golden inputs from the testdata directory,
	// so the fuzzer starts from valid documents.
	seedFiles, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("{}"))
	f.Add([]byte("[]"))
	f.Add([]byte("--- null"))
	f.Add([]byte("key: value # comment"))
	f.Add([]byte("- a\n- |\n  b"))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Invalid input is expected; the fuzzer's job is to find inputs
		// that cause a panic, which the engine detects on its own.
		v1, err := ytree.Parse(data)
		if err != nil {
			return
		}

		// Printing a tree our own parser produced must never fail.
		out1, err := ytree.Marshal(v1)
		require.NoError(t, err, "Marshal failed for a successfully parsed tree")

		// Our own output must parse again and reach a fixed point: the
		// reprinted form is canonical.
		v2, err := ytree.Parse(out1)
		require.NoError(t, err, "Parse failed on our own marshaled output")
		require.True(t, v1.Equal(v2), "tree is not the same after a print/parse round trip")

		out2, err := ytree.Marshal(v2)
		require.NoError(t, err)
		require.Equal(t, string(out1), string(out2), "printed form is not canonical")
	})
}
