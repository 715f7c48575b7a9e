package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*LocalFileStorage, string) {
	t.Helper()
	root := t.TempDir()
	s, err := NewLocalFileStorage(filepath.Join(root, "assets"), "/assets")
	require.NoError(t, err)
	return s, root
}

func TestLocalFileStorage_SaveAndDelete(t *testing.T) {
	s, _ := newTestStorage(t)

	rel, err := s.Save(strings.NewReader("img"), "foto.png", "tipos-activo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "tipos-activo/"))
	assert.True(t, s.Exists(rel))

	url := s.URL(rel)
	assert.Equal(t, "/assets/"+rel, url)
	require.NoError(t, s.Delete(url))
	assert.False(t, s.Exists(rel))

	assert.NoError(t, s.Delete(url), "deleting a missing file is not an error")
}

func TestLocalFileStorage_StaysUnderRoot(t *testing.T) {
	s, root := newTestStorage(t)
	victim := filepath.Join(root, "secret.txt")
	require.NoError(t, os.WriteFile(victim, []byte("x"), 0o600))

	for _, p := range []string{"../secret.txt", "cvs/../../secret.txt", ".."} {
		t.Run(p, func(t *testing.T) {
			_, err := s.Path(p)
			assert.ErrorIs(t, err, ErrOutsideRoot)

			assert.ErrorIs(t, s.Delete(p), ErrOutsideRoot)
			assert.False(t, s.Exists(p))

			_, err = s.SaveAs(strings.NewReader("y"), p)
			assert.ErrorIs(t, err, ErrOutsideRoot)

			_, err = s.Open(p)
			assert.ErrorIs(t, err, ErrOutsideRoot)
		})
	}

	assert.ErrorIs(t, s.Delete("/assets/../secret.txt"), ErrOutsideRoot, "public URLs are resolved before the check")

	data, err := os.ReadFile(victim)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestLocalFileStorage_PathInsideRoot(t *testing.T) {
	s, root := newTestStorage(t)

	got, err := s.Path("cvs/10-101.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "assets", "cvs", "10-101.pdf"), got)

	got, err = s.Path("cvs/../cvs/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "assets", "cvs", "a.pdf"), got)
}

func TestLocalFileStorage_List(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.List("cvs", ".pdf")
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, name := range []string{"cvs/1-101.pdf", "cvs/2-101.PDF", "cvs/notas.txt"} {
		_, err := s.SaveAs(strings.NewReader("x"), name)
		require.NoError(t, err)
	}
	names, err := s.List("cvs", ".pdf")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1-101.pdf", "2-101.PDF"}, names)
}
