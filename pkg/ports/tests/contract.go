package tests

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ResolverFixture describes what a resolver under test has been seeded with.
type ResolverFixture struct {
	// Files maps path tokens to their expected contents.
	Files map[string][]byte
	// Missing is a token that does not resolve to anything.
	Missing string
	// Directory is a token that names a directory.
	Directory string
}

// SourceResolverContractTest is a reusable test suite that verifies if an adapter complies with ports.SourceResolver.
func SourceResolverContractTest(t *testing.T, resolver ports.SourceResolver, fx ResolverFixture) {
	t.Helper()

	t.Run("Open_Success", func(t *testing.T) {
		for path, expected := range fx.Files {
			src, err := resolver.Open(path)
			require.NoError(t, err, "open %s", path)

			got, err := io.ReadAll(src)
			require.NoError(t, err)
			assert.Equal(t, expected, got, "content mismatch for %s", path)
			assert.Equal(t, path, src.Path())
			assert.NoError(t, src.Close())
		}
	})

	t.Run("Open_NotFound", func(t *testing.T) {
		_, err := resolver.Open(fx.Missing)
		require.Error(t, err)

		var srcErr *domain.SourceError
		require.True(t, errors.As(err, &srcErr), "expected *domain.SourceError, got %T", err)
		assert.Equal(t, fx.Missing, srcErr.Path)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	if fx.Directory != "" {
		t.Run("Open_Directory", func(t *testing.T) {
			_, err := resolver.Open(fx.Directory)
			require.Error(t, err)

			var srcErr *domain.SourceError
			require.True(t, errors.As(err, &srcErr))
			assert.Equal(t, fx.Directory, srcErr.Path)
			assert.ErrorIs(t, err, domain.ErrIsDirectory)
		})
	}
}
