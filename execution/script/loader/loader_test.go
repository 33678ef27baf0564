package loader

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `users = ["Alice", "Bob", "Charlie"]
print(users[-1])`

func readAll(t *testing.T, l Loader) string {
	t.Helper()
	r, err := l.GetReader()
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestNewFromString(t *testing.T) {
	t.Parallel()

	t.Run("content is trimmed and readable twice", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromString("\n  " + sampleScript + "\n\n")
		require.NoError(t, err)

		assert.Equal(t, sampleScript, readAll(t, l))
		assert.Equal(t, sampleScript, readAll(t, l))
		assert.Equal(t, "string", l.GetSourceURL().Scheme)
		assert.Equal(t, "inline", l.GetSourceURL().Host)
		assert.Contains(t, l.String(), "Chars:")
	})

	t.Run("same content same url", func(t *testing.T) {
		t.Parallel()
		a, err := NewFromString(sampleScript)
		require.NoError(t, err)
		b, err := NewFromString(sampleScript)
		require.NoError(t, err)
		assert.Equal(t, a.GetSourceURL().String(), b.GetSourceURL().String())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromString("   \n\t")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		assert.Nil(t, l)
	})
}

func TestNewFromDisk(t *testing.T) {
	t.Parallel()

	t.Run("absolute path", func(t *testing.T) {
		t.Parallel()
		p := filepath.Join(t.TempDir(), "lesson.star")
		require.NoError(t, os.WriteFile(p, []byte(sampleScript), 0o600))

		for _, in := range []string{p, "file://" + p} {
			l, err := NewFromDisk(in)
			require.NoError(t, err)
			assert.Equal(t, "file", l.GetSourceURL().Scheme)
			assert.Equal(t, p, l.GetSourceURL().Path)
			assert.Equal(t, sampleScript, readAll(t, l))
			assert.Contains(t, l.String(), "SHA256:")
		}
	})

	t.Run("unsupported schemes", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"http://example.com/a.star", "https://example.com/a.star"} {
			l, err := NewFromDisk(in)
			require.ErrorIs(t, err, ErrSchemeUnsupported)
			assert.Nil(t, l)
		}
	})

	t.Run("relative and root paths", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"lesson.star", "./lesson.star", "../lesson.star", "/"} {
			_, err := NewFromDisk(in)
			require.ErrorIs(t, err, ErrScriptNotAvailable, in)
		}
	})

	t.Run("missing file fails on read", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromDisk(filepath.Join(t.TempDir(), "missing.star"))
		require.NoError(t, err)

		_, err = l.GetReader()
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.NotContains(t, l.String(), "SHA256")
	})
}

func TestNewFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"lessons/01_containers.star": {Data: []byte(sampleScript)},
		"lessons/blank.star":         {Data: []byte("  \n")},
	}

	t.Run("reads embedded lesson", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromFS(fsys, "lessons/01_containers.star")
		require.NoError(t, err)
		assert.Equal(t, sampleScript, readAll(t, l))
		assert.Equal(t, "lesson", l.GetSourceURL().Scheme)
		assert.Equal(t, "01_containers.star", l.GetSourceURL().Host)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromFS(fsys, "lessons/missing.star")
		require.ErrorIs(t, err, ErrScriptNotAvailable)

		_, err = NewFromFS(fsys, "lessons/blank.star")
		require.ErrorIs(t, err, ErrScriptNotAvailable)

		_, err = NewFromFS(nil, "x")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	})
}
