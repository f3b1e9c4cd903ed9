package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}

	paths, err := Resolve([]string{"explicit.txt"}, []string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"explicit.txt",
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, paths)

	_, err = Resolve(nil, []string{"["})
	assert.Error(t, err)
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("Hand #1-1 - 2020-04-26 20:00:00\r\nTable: A\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("one\n\ntwo"), 0o644))

	sources, err := ReadAll(context.Background(), []string{second, first})
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, second, sources[0].Name)
	assert.Equal(t, []string{"one", "", "two"}, sources[0].Lines)
	assert.Equal(t, first, sources[1].Name)
	assert.Equal(t, []string{"Hand #1-1 - 2020-04-26 20:00:00", "Table: A"}, sources[1].Lines)

	_, err = ReadAll(context.Background(), []string{first, filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}
