package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConsonant(t *testing.T) {
	testCases := []struct {
		word string
		idx  int
		want bool
	}{
		{"tap", 0, true},
		{"tap", 1, false},
		{"tap", 2, true},
		// 'y' в начале слова — согласная
		{"yoke", 0, true},
		// 'y' после согласной — гласная
		{"sky", 2, false},
		{"dry", 2, false},
		// 'y' после гласной — согласная
		{"toy", 2, true},
		{"play", 3, true},
		// цепочка 'y' чередует класс: s-y-z-y-g-y = C-V-C-V-C-V
		{"syzygy", 1, false},
		{"syzygy", 3, false},
		{"syzygy", 5, false},
		// подряд идущие 'y' тоже чередуются
		{"yyy", 0, true},
		{"yyy", 1, false},
		{"yyy", 2, true},
	}

	for _, tc := range testCases {
		got := isConsonant([]byte(tc.word), tc.idx)
		assert.Equal(t, tc.want, got, "word %q idx %d", tc.word, tc.idx)
	}
}

func TestHasVowel(t *testing.T) {
	assert.True(t, hasVowel([]byte("run")))
	assert.True(t, hasVowel([]byte("cry"))) // 'y' после согласной считается гласной
	assert.False(t, hasVowel([]byte("crwth")))
	assert.False(t, hasVowel([]byte("sk")))
	assert.False(t, hasVowel(nil))
}

func TestMeasure(t *testing.T) {
	testCases := []struct {
		word string
		want int
	}{
		{"", 0},
		{"tr", 0},
		{"ee", 0},
		{"tree", 0},
		{"by", 0},
		{"y", 0},
		{"trouble", 1},
		{"oats", 1},
		{"trees", 1},
		{"ivy", 1},
		{"troubles", 2},
		{"private", 2},
		{"oaten", 2},
		{"orrery", 2},
		{"gener", 2},
		{"analog", 3},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, measure([]byte(tc.word)), "measure(%q)", tc.word)
	}
}

func TestEndsDoubleConsonant(t *testing.T) {
	assert.True(t, endsDoubleConsonant([]byte("fall")))
	assert.True(t, endsDoubleConsonant([]byte("fizz")))
	assert.False(t, endsDoubleConsonant([]byte("tree"))) // одинаковые, но гласные
	assert.False(t, endsDoubleConsonant([]byte("hop")))
	assert.False(t, endsDoubleConsonant([]byte("t")))
}

func TestEndsCVC(t *testing.T) {
	// проверка идёт по префиксу w[:end+1] исходного буфера
	testCases := []struct {
		word string
		end  int
		want bool
	}{
		{"hop", 2, true},
		{"fil", 2, true},
		{"fail", 3, false},  // гласная серия перед l
		{"sing", 3, false},  // n — согласная на месте гласной
		{"snow", 3, false},  // w исключена
		{"box", 2, false},   // x исключена
		{"say", 2, false},   // y исключена
		{"at", 1, false},    // короче трёх символов
		{"arc", 2, false},   // r на месте гласной
	}

	for _, tc := range testCases {
		got := endsCVC([]byte(tc.word), tc.end)
		assert.Equal(t, tc.want, got, "endsCVC(%q, %d)", tc.word, tc.end)
	}
}

// Предикат CVC всегда получает исходный буфер и смещение конца основы:
// для "size" основа "siz" — это CVC (поэтому 'e' сохраняется), хотя
// само слово "size" на гласную CVC не оканчивается.
func TestEndsCVC_OriginalWordIndexing(t *testing.T) {
	word := []byte("size")

	require.True(t, endsCVC(word, 2), "основа siz")
	require.False(t, endsCVC(word, 3), "полное слово size")

	// классификация 'y' внутри основы смотрит налево в исходном слове:
	// в "style" основа "styl" — CVC, потому что 'y' после 't' — гласная
	assert.True(t, endsCVC([]byte("style"), 3))
}
