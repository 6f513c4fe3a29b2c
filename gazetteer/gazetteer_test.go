package gazetteer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g, err := New([]string{"bled", "kranj", "ljubljana"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
}

func TestNewRejectsUnsorted(t *testing.T) {
	_, err := New([]string{"ljubljana", "bled"})
	assert.ErrorIs(t, err, ErrNotSorted)
}

func TestContains(t *testing.T) {
	g, err := New([]string{"bled", "novo mesto", "ptuj"})
	require.NoError(t, err)

	assert.True(t, g.Contains("bled"))
	assert.True(t, g.Contains("Ptuj"))
	assert.True(t, g.Contains("novo mesto"))
	assert.False(t, g.Contains("dunaj"))
	assert.False(t, g.Contains(""))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "towns.txt")
	content := "# slovenian towns\nbled\n\nkamnik\nptuj\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Contains("kamnik"))
}

func TestLoadUnsorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "towns.txt")
	require.NoError(t, os.WriteFile(path, []byte("ptuj\nbled\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotSorted)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
