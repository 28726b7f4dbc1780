package memory_test

import (
	"io"
	"strings"
	"testing"

	"github.com/aretw0/catena/pkg/adapters/memory"
	"github.com/aretw0/catena/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryResolver_Contract(t *testing.T) {
	r := memory.NewResolver(map[string]string{
		"a.txt": "alpha\n",
		"b.txt": "",
	}).WithDirectory("dir")

	tests.SourceResolverContractTest(t, r, tests.ResolverFixture{
		Files: map[string][]byte{
			"a.txt": []byte("alpha\n"),
			"b.txt": {},
		},
		Missing:   "missing.txt",
		Directory: "dir",
	})
}

func TestMemoryResolver_Stdin(t *testing.T) {
	r := memory.NewResolver(nil).WithStdin(strings.NewReader("piped"))

	src, err := r.Open("-")
	require.NoError(t, err)
	got, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "piped", string(got))
	assert.NoError(t, src.Close())
}

func TestMemoryResolver_TracksOpenSources(t *testing.T) {
	r := memory.NewResolver(map[string]string{"a": "x"})

	src, err := r.Open("a")
	require.NoError(t, err)
	assert.Equal(t, 1, r.OpenCount("a"))

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
	assert.Equal(t, 0, r.OpenCount("a"))
}
