package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryWords(t *testing.T) {
	got := DictionaryWords([]string{"Hello", "hello", "résumé", "don’t", "co-op", "go", "  World "})
	assert.Equal(t, []string{"hello", "world"}, got)
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# custom words\nhello\n\n  world  \n"), 0o644))
	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, words)
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n# nothing\n"), 0o644))
	_, err := LoadWords(path)
	assert.Error(t, err)
}

func TestLoadWordsMissing(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
