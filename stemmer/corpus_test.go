package stemmer

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, name string) []string {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

// Прогон эталонного корпуса: каждая строка словаря должна дать ровно
// ту основу, что записана в той же строке файла основ.
func TestStem_Corpus(t *testing.T) {
	words := readLines(t, "vocabulary.txt")
	stems := readLines(t, "stems.txt")
	require.Equal(t, len(words), len(stems), "файлы корпуса должны быть одной длины")

	mismatches := 0
	for i, w := range words {
		got := Stem(w)
		if got != stems[i] {
			mismatches++
			t.Errorf("строка %d: вход %q, получили %q, ожидали %q", i+1, w, got, stems[i])
		}
	}
	assert.Zero(t, mismatches)
}

// Ни на одном слове корпуса основа не длиннее исходного слова.
func TestStem_CorpusLengthNonIncrease(t *testing.T) {
	for _, w := range readLines(t, "vocabulary.txt") {
		got := Stem(w)
		assert.LessOrEqual(t, len(got), len(w), "Stem(%q) = %q", w, got)
	}
}
